// Package interpret turns free-form Spanish chat messages into structured
// financial actions. It is the deterministic half of the assistant: a text
// normalizer, an amount extractor, a destination resolver and an ordered
// rule cascade, with no generative-model involvement.
package interpret

// ActionType identifies one of the closed set of financial intents the
// classifier can emit.
type ActionType string

const (
	ActionCreateInvoice            ActionType = "create_invoice"
	ActionCreateExpense            ActionType = "create_expense"
	ActionCreateCustomer           ActionType = "create_customer"
	ActionCreateProduct            ActionType = "create_product"
	ActionCreateChartOfAccounts    ActionType = "create_chart_of_accounts"
	ActionClearChartOfAccounts     ActionType = "clear_chart_of_accounts"
	ActionRecordPayment            ActionType = "record_payment"
	ActionRecordIncome             ActionType = "record_income"
	ActionRecordExpenseTransaction ActionType = "record_expense_transaction"
	ActionGetReport                ActionType = "get_report"

	// ActionNone means no structured action was recognized and the caller
	// should fall back to conversational handling.
	ActionNone ActionType = "none"
)

// AllActionTypes lists every dispatchable action type (everything except
// ActionNone). Handler registration is expected to cover this set in full.
var AllActionTypes = []ActionType{
	ActionCreateInvoice,
	ActionCreateExpense,
	ActionCreateCustomer,
	ActionCreateProduct,
	ActionCreateChartOfAccounts,
	ActionClearChartOfAccounts,
	ActionRecordPayment,
	ActionRecordIncome,
	ActionRecordExpenseTransaction,
	ActionGetReport,
}

func (t ActionType) String() string { return string(t) }

// Parameter keys carried in Action.Params.
const (
	ParamMessage = "message" // the raw, unmodified user message
	ParamAmount  = "amount"  // canonical decimal string of the first extracted amount
	ParamQuery   = "query"   // free-text query forwarded to the report handler
)

// Action is the classifier's verdict for a single message. Params always
// contain the raw message under ParamMessage.
type Action struct {
	Type   ActionType
	Params map[string]string
}

// IsNone reports whether the action defers to the conversational fallback.
func (a Action) IsNone() bool { return a.Type == ActionNone }
