package interpret

// evidence is everything a tier may look at. Normalization, amount
// extraction and destination resolution each happen exactly once per
// message; every tier sees the same values.
type evidence struct {
	raw         string
	normalized  string
	amounts     Amounts
	destination Destination
}

// tier is one ordered group of predicates. Tiers are evaluated strictly in
// slice order and the first one that matches short-circuits the rest, so the
// ordering below is load-bearing, testable data rather than implicit control
// flow.
type tier struct {
	name string
	eval func(ev evidence) (Action, bool)
}

// Classifier is the one-shot, stateless rule cascade. It never errors:
// every input, including empty and adversarial strings, yields exactly one
// Action, with ActionNone as the terminal verdict.
type Classifier struct {
	tiers []tier
}

// NewClassifier builds the cascade in its mandatory order.
func NewClassifier() *Classifier {
	return &Classifier{tiers: []tier{
		{name: "explicit_nouns", eval: tierExplicitNouns},
		{name: "verb_forms", eval: tierVerbForms},
		{name: "command_verbs", eval: tierCommandVerbs},
		{name: "report_query", eval: tierReportQuery},
		{name: "catalog_and_creation", eval: tierCatalogAndCreation},
	}}
}

// TierNames exposes the evaluation order for tests.
func (c *Classifier) TierNames() []string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.name
	}
	return names
}

// Classify maps one raw message to exactly one Action, first match wins.
func (c *Classifier) Classify(raw string) Action {
	normalized := Normalize(raw)
	ev := evidence{
		raw:         raw,
		normalized:  normalized,
		amounts:     ExtractAmounts(normalized),
		destination: ResolveDestination(normalized),
	}
	for _, t := range c.tiers {
		if action, ok := t.eval(ev); ok {
			return action
		}
	}
	return Action{Type: ActionNone, Params: map[string]string{ParamMessage: raw}}
}

// recordAction builds an amount-bearing action, preserving the raw message
// and the canonical first amount.
func recordAction(t ActionType, ev evidence) Action {
	return Action{Type: t, Params: map[string]string{
		ParamMessage: ev.raw,
		ParamAmount:  ev.amounts.First().String(),
	}}
}

func plainAction(t ActionType, ev evidence) Action {
	return Action{Type: t, Params: map[string]string{ParamMessage: ev.raw}}
}

// Tier 1: explicit transaction nouns plus an amount. This is the only tier
// that honors the resolved destination; an explicit "pago ... en
// transacciones" lands in the transactions ledger instead of payments.
func tierExplicitNouns(ev evidence) (Action, bool) {
	if !ev.amounts.HasAmount {
		return Action{}, false
	}
	if IncomeNouns.Matches(ev.normalized) {
		return recordAction(ActionRecordIncome, ev), true
	}
	if ExpenseNouns.Matches(ev.normalized) {
		if ev.destination == DestinationTransactions {
			return recordAction(ActionRecordExpenseTransaction, ev), true
		}
		return recordAction(ActionRecordPayment, ev), true
	}
	return Action{}, false
}

// Tier 2: conjugated income/expense verbs plus an amount. ev.destination is
// intentionally not consulted here; whether verb-based expenses should honor
// an explicit "en transacciones" is an open product question, and current
// behavior says no.
func tierVerbForms(ev evidence) (Action, bool) {
	if !ev.amounts.HasAmount {
		return Action{}, false
	}
	if IncomeVerbs.Matches(ev.normalized) {
		return recordAction(ActionRecordIncome, ev), true
	}
	if ExpenseVerbs.Matches(ev.normalized) {
		return recordAction(ActionRecordPayment, ev), true
	}
	return Action{}, false
}

// Tier 3: imperative command verbs (add/register/note/put/save) plus an
// amount. A recognized income concept wins over expense concepts; a command
// with an amount but no recognized concept still records a payment. That
// default is long-standing product policy, preserved as-is. Destination is
// ignored here too, same as tier 2.
func tierCommandVerbs(ev evidence) (Action, bool) {
	if !ev.amounts.HasAmount || !CommandVerbs.Matches(ev.normalized) {
		return Action{}, false
	}
	if IncomeConcepts.Matches(ev.normalized) {
		return recordAction(ActionRecordIncome, ev), true
	}
	if ExpenseConcepts.Matches(ev.normalized) {
		return recordAction(ActionRecordPayment, ev), true
	}
	// No recognized concept: still a payment. Product policy, kept explicit.
	return recordAction(ActionRecordPayment, ev), true
}

// Tier 4: report queries. Requires a question/request word plus either a
// financial concept or a temporal reference. Only reachable when no
// amount-bearing tier matched.
func tierReportQuery(ev evidence) (Action, bool) {
	if !QuestionWords.Matches(ev.normalized) {
		return Action{}, false
	}
	if !FinancialConcepts.Matches(ev.normalized) && !HasTemporalReference(ev.normalized) {
		return Action{}, false
	}
	action := plainAction(ActionGetReport, ev)
	action.Params[ParamQuery] = ev.raw
	return action, true
}

// Tier 5: catalog maintenance and entity creation. The destructive branch
// is checked before generic creation because both vocabularies share the
// word "cuentas".
func tierCatalogAndCreation(ev evidence) (Action, bool) {
	if ClearWords.Matches(ev.normalized) && AccountsWords.Matches(ev.normalized) {
		return plainAction(ActionClearChartOfAccounts, ev), true
	}
	if !CreationVerbs.Matches(ev.normalized) {
		return Action{}, false
	}
	switch {
	case CatalogPhrases.Matches(ev.normalized):
		return plainAction(ActionCreateChartOfAccounts, ev), true
	case InvoiceWords.Matches(ev.normalized):
		return plainAction(ActionCreateInvoice, ev), true
	case CustomerWords.Matches(ev.normalized):
		return plainAction(ActionCreateCustomer, ev), true
	case ProductWords.Matches(ev.normalized):
		return plainAction(ActionCreateProduct, ev), true
	}
	return Action{}, false
}
