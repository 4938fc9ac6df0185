package interpret

import (
	"regexp"

	"github.com/cloudflare/ahocorasick"
)

// Vocab is a static set of Spanish keywords or phrases compiled into an
// Aho-Corasick matcher so every tier check is a single pass over the message.
// Terms are stored lowercase and diacritic-free to match normalized input;
// matching is substring containment, the same flat semantics the rest of the
// cascade relies on.
type Vocab struct {
	terms   []string
	matcher *ahocorasick.Matcher
}

func newVocab(terms ...string) Vocab {
	return Vocab{terms: terms, matcher: ahocorasick.NewStringMatcher(terms)}
}

// Matches reports whether any term occurs in the normalized message.
func (v Vocab) Matches(normalized string) bool {
	return v.matcher.Contains([]byte(normalized))
}

// Terms returns a copy of the vocabulary for exhaustive enumeration in tests.
func (v Vocab) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Vocabulary tables consumed by the rule cascade. Each set is deliberately
// small and closed; growing one is a product decision, not a code change
// elsewhere.
var (
	// Tier 1: explicit transaction nouns.
	IncomeNouns  = newVocab("ingreso", "entrada", "cobro")
	ExpenseNouns = newVocab("gasto", "pago")

	// Tier 2: first-person past-tense verbs. Income verbs cover charged /
	// received / paid-to-me / deposited / sold / invoiced; expense verbs
	// cover paid / spent / bought / invested / disbursed.
	IncomeVerbs = newVocab(
		"cobre", "recibi", "me pagaron", "me depositaron", "deposite",
		"vendi", "facture",
	)
	ExpenseVerbs = newVocab("pague", "gaste", "compre", "inverti", "desembolse")

	// Tier 3: imperative command verbs (add / register / note / put / save)
	// and the concept nouns that decide which ledger the command targets.
	CommandVerbs = newVocab(
		"agrega", "agregar", "registra", "registrar", "anota", "anotar",
		"apunta", "pon", "mete", "guarda", "guardar",
	)
	IncomeConcepts = newVocab("ingreso", "venta", "cobro", "servicio", "viaje", "flete")
	ExpenseConcepts = newVocab(
		"seguro", "mensualidad", "abono", "chofer", "conductor",
		"gasolina", "diesel", "combustible", "mantenimiento",
		"permiso", "placas", "calcomania", "verificacion",
		"caseta", "peaje", "llanta", "refaccion",
		"camion", "camioneta", "trailer", "tractocamion", "unidad", "vehiculo",
		"reparacion", "factura", "recibo",
		"luz", "agua", "telefono", "internet", "renta",
	)

	// Tier 4: report queries.
	QuestionWords = newVocab(
		"cuanto", "cuanta", "cuantos", "cuantas", "dame", "dime",
		"muestra", "cual", "cuales", "lista", "balance",
		"reporte", "resumen", "total",
	)
	FinancialConcepts = newVocab(
		"gane", "ganancia", "utilidad", "ingreso", "venta",
		"gasto", "perdida",
	)
	TemporalWords = newVocab(
		"mes", "ano", "anio", "semana", "hoy", "ayer",
		"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre",
	)

	// Tier 5: catalog maintenance and entity creation.
	ClearWords = newVocab(
		"limpia", "limpiar", "borra", "borrar", "elimina", "eliminar",
		"resetea", "reinicia",
	)
	AccountsWords  = newVocab("catalogo", "cuentas")
	CreationVerbs  = newVocab("crea", "crear", "genera", "generar", "haz", "nuevo", "nueva")
	CatalogPhrases = newVocab("catalogo de cuentas", "catalogo", "plan de cuentas")
	InvoiceWords   = newVocab("factura")
	CustomerWords  = newVocab("cliente")
	ProductWords   = newVocab("producto", "servicio")

	// Destination resolver: explicit ledger-name phrases.
	ExpensesLedgerPhrases = newVocab(
		"en gastos", "a gastos", "en los gastos", "en mis gastos",
	)
	TransactionsLedgerPhrases = newVocab(
		"en transacciones", "a transacciones",
		"en las transacciones", "en mis transacciones",
	)
)

// yearPattern complements TemporalWords: a standalone 4-digit year also
// counts as a temporal reference in report queries.
var yearPattern = regexp.MustCompile(`\b(19|20)\d\d\b`)

// HasTemporalReference reports whether the message names a period: a
// temporal word, a month name, or a 4-digit year.
func HasTemporalReference(normalized string) bool {
	return TemporalWords.Matches(normalized) || yearPattern.MatchString(normalized)
}
