package interpret

// Destination is the target ledger the user asked for explicitly, resolved
// once per message. Only the explicit-noun tier of the cascade consumes it;
// later tiers receive it and deliberately ignore it.
type Destination string

const (
	DestinationDefault      Destination = "default"
	DestinationTransactions Destination = "transactions"
	DestinationExpenses     Destination = "expenses"
)

// ResolveDestination inspects the normalized message for ledger-name
// phrases. An expenses phrase always wins, regardless of anything else in
// the message; a transactions phrase only counts when no expenses phrase is
// present. The asymmetry is intentional and must not be "fixed".
func ResolveDestination(normalized string) Destination {
	if ExpensesLedgerPhrases.Matches(normalized) {
		return DestinationExpenses
	}
	if TransactionsLedgerPhrases.Matches(normalized) {
		return DestinationTransactions
	}
	return DestinationDefault
}
