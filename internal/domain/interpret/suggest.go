package interpret

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// commandExample pairs a canonical phrasing with the action it triggers.
// Used only to hint the user on the ActionNone path; never consulted during
// classification.
type commandExample struct {
	phrase string
	action ActionType
}

var commandExamples = []commandExample{
	{"pague 200 de gasolina", ActionRecordPayment},
	{"cobre 1500 por un flete", ActionRecordIncome},
	{"agrega un gasto de 300", ActionRecordPayment},
	{"agrega un ingreso de 500", ActionRecordIncome},
	{"cuanto gane este mes", ActionGetReport},
	{"dame un resumen de gastos", ActionGetReport},
	{"crea una factura", ActionCreateInvoice},
	{"crea un cliente", ActionCreateCustomer},
	{"crea un producto", ActionCreateProduct},
	{"crea el catalogo de cuentas", ActionCreateChartOfAccounts},
	{"limpia el catalogo de cuentas", ActionClearChartOfAccounts},
}

// SuggestCommands ranks the known command phrasings by edit distance to the
// message and returns the closest ones. Helps the conversational fallback
// answer "I didn't get that, did you mean ...".
func SuggestCommands(raw string, limit int) []string {
	normalized := Normalize(raw)

	type ranked struct {
		phrase   string
		distance int
	}
	candidates := make([]ranked, 0, len(commandExamples))
	for _, ex := range commandExamples {
		candidates = append(candidates, ranked{
			phrase:   ex.phrase,
			distance: fuzzy.LevenshteinDistance(normalized, ex.phrase),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.phrase)
	}
	return out
}
