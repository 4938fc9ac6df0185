package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_TierOrderIsData(t *testing.T) {
	c := NewClassifier()
	assert.Equal(t, []string{
		"explicit_nouns",
		"verb_forms",
		"command_verbs",
		"report_query",
		"catalog_and_creation",
	}, c.TierNames())
}

func TestClassify_Scenarios(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		message string
		want    ActionType
	}{
		{"expense verb with amount", "Pagué $200 de seguro del mes de noviembre", ActionRecordPayment},
		{"income verb with amount", "Cobré 1500 por el servicio de flete", ActionRecordIncome},
		{"command verb with expense concept", "Agrega 300 de gasolina", ActionRecordPayment},
		{"command verb with income concept", "Agrega un ingreso de 5000 por venta", ActionRecordIncome},
		{"report question", "¿Cuánto gané en noviembre?", ActionGetReport},
		{"create customer", "Crea un cliente nuevo", ActionCreateCustomer},
		{"clear chart before creation", "Limpia el catálogo de cuentas", ActionClearChartOfAccounts},
		{"small talk", "Hola, ¿cómo estás?", ActionNone},
		{"create invoice", "Genera una factura por favor", ActionCreateInvoice},
		{"create product", "Crea un producto", ActionCreateProduct},
		{"create chart of accounts", "Crea el catálogo de cuentas", ActionCreateChartOfAccounts},
		{"report with month only", "Dame el balance de noviembre", ActionGetReport},
		{"report with year", "Muéstrame las ventas de 2024", ActionGetReport},
		{"question without concept or period", "¿Cuánto es dos mas dos?", ActionNone},
		{"empty message", "", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.message, got.Params[ParamMessage],
				"raw message must be preserved unmodified")
		})
	}
}

func TestClassify_ExplicitNounHonorsDestination(t *testing.T) {
	c := NewClassifier()

	t.Run("default goes to payments", func(t *testing.T) {
		got := c.Classify("Registra un pago de 200")
		assert.Equal(t, ActionRecordPayment, got.Type)
	})

	t.Run("explicit transactions ledger", func(t *testing.T) {
		got := c.Classify("Registra un pago de 200 en transacciones")
		assert.Equal(t, ActionRecordExpenseTransaction, got.Type)
	})

	t.Run("expenses phrase overrides transactions", func(t *testing.T) {
		got := c.Classify("Registra un pago de 200 en transacciones y en gastos")
		assert.Equal(t, ActionRecordPayment, got.Type)
	})
}

// The destination preference is resolved for every message but only the
// explicit-noun tier reads it. Verb- and command-based tiers ignore an
// explicit "en transacciones"; that asymmetry is intended behavior.
func TestClassify_DestinationIgnoredByVerbTiers(t *testing.T) {
	c := NewClassifier()

	t.Run("verb tier", func(t *testing.T) {
		got := c.Classify("Pagué 200 de diesel en transacciones")
		assert.Equal(t, ActionRecordPayment, got.Type)
	})

	t.Run("command tier", func(t *testing.T) {
		got := c.Classify("Anota 300 de gasolina en transacciones")
		assert.Equal(t, ActionRecordPayment, got.Type)
	})
}

// A command verb plus an amount with no recognized concept still records a
// payment. The default is deliberate product policy; pin it down.
func TestClassify_CommandVerbUnknownConceptDefaultsToPayment(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("Agrega 450 de lo pendiente")
	assert.Equal(t, ActionRecordPayment, got.Type)
}

func TestClassify_ZeroAmountNeverRecords(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("Agrega 0 de gasolina")
	assert.Equal(t, ActionNone, got.Type)
}

func TestClassify_AmountParamCarriesCanonicalValue(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("Pagué 1,574.14 de renta")
	require.Equal(t, ActionRecordPayment, got.Type)
	assert.Equal(t, "1574.14", got.Params[ParamAmount])

	got = c.Classify("Pagué 1.574.14 de renta")
	require.Equal(t, ActionRecordPayment, got.Type)
	assert.Equal(t, "1574.14", got.Params[ParamAmount])
}

func TestClassify_ReportCarriesQuery(t *testing.T) {
	c := NewClassifier()
	raw := "¿Cuánto gané este mes?"
	got := c.Classify(raw)
	require.Equal(t, ActionGetReport, got.Type)
	assert.Equal(t, raw, got.Params[ParamQuery])
	assert.Equal(t, raw, got.Params[ParamMessage])
}

// Every verb in the tier-2 vocabularies must classify on its own when paired
// with an amount, so vocabulary growth cannot silently miss a tier.
func TestClassify_VerbVocabulariesAreLive(t *testing.T) {
	c := NewClassifier()

	for _, verb := range IncomeVerbs.Terms() {
		got := c.Classify(verb + " 100 ayer")
		assert.Equal(t, ActionRecordIncome, got.Type, "income verb %q", verb)
	}
	for _, verb := range ExpenseVerbs.Terms() {
		got := c.Classify(verb + " 100 ayer")
		assert.Equal(t, ActionRecordPayment, got.Type, "expense verb %q", verb)
	}
}

func TestClassify_ConceptVocabulariesAreLive(t *testing.T) {
	c := NewClassifier()

	for _, concept := range IncomeConcepts.Terms() {
		got := c.Classify("agrega 100 de " + concept)
		assert.Equal(t, ActionRecordIncome, got.Type, "income concept %q", concept)
	}
	for _, concept := range ExpenseConcepts.Terms() {
		got := c.Classify("agrega 100 de " + concept)
		assert.Equal(t, ActionRecordPayment, got.Type, "expense concept %q", concept)
	}
}

func TestClassify_NeverPanicsOnAdversarialInput(t *testing.T) {
	c := NewClassifier()
	inputs := []string{
		"............",
		",,,,,,",
		"$$$$",
		"\x00\x01\x02",
		"ñ\xffñ",
		"𝔭𝔞𝔤𝔲é 200",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		assert.NotEmpty(t, got.Type, "input %q must yield a defined action", in)
	}
}
