package interpret

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountTokenPattern matches maximal runs of digits, periods and commas.
// Tokens are matched purely by character class; canonicalization decides
// whether they are real numbers.
var amountTokenPattern = regexp.MustCompile(`[0-9.,]+`)

// Amounts is the extractor's verdict for one normalized message.
type Amounts struct {
	Tokens []string          // raw tokens in order of appearance
	Values []decimal.Decimal // canonical values for tokens that parsed
	// HasAmount is true iff at least one token canonicalized to a value
	// greater than zero.
	HasAmount bool
}

// First returns the first parsed value, or zero when none parsed.
func (a Amounts) First() decimal.Decimal {
	if len(a.Values) == 0 {
		return decimal.Zero
	}
	return a.Values[0]
}

// ExtractAmounts scans a normalized message for numeric tokens and
// canonicalizes each one. Unparseable tokens (",", "...") contribute nothing.
func ExtractAmounts(normalized string) Amounts {
	out := Amounts{Tokens: amountTokenPattern.FindAllString(normalized, -1)}
	for _, tok := range out.Tokens {
		value, ok := canonicalizeToken(tok)
		if !ok {
			continue
		}
		out.Values = append(out.Values, value)
		if value.IsPositive() {
			out.HasAmount = true
		}
	}
	return out
}

// canonicalizeToken resolves the "1,574.14" vs "1.574.14" ambiguity: commas
// are always thousands separators and only the rightmost period is the
// decimal point. This is a frozen heuristic, not locale detection; comma-as-
// decimal input ("1.574,14") is deliberately unsupported because downstream
// classification outcomes depend on the current behavior.
func canonicalizeToken(tok string) (decimal.Decimal, bool) {
	tok = strings.ReplaceAll(tok, ",", "")
	if strings.Count(tok, ".") > 1 {
		last := strings.LastIndex(tok, ".")
		tok = strings.ReplaceAll(tok[:last], ".", "") + tok[last:]
	}
	// "200." (sentence-final period) parses as 200; ".5" as 0.5.
	tok = strings.TrimSuffix(tok, ".")
	if strings.HasPrefix(tok, ".") {
		tok = "0" + tok
	}
	if tok == "" {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}
