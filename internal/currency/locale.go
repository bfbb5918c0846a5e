package currency

import (
	"math"
	"regexp"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The locale-aware variant groups the numeral ("12,345.68") and accepts
// lowercase ISO codes. It is intentionally separate from Format: the two
// are not guaranteed to produce identical strings for every currency, so
// report output sticks to the fixed-table formatter.

var localePrinter = message.NewPrinter(language.AmericanEnglish)

// nonNumeral matches everything that is not part of a grouped numeral.
var nonNumeral = regexp.MustCompile(`[^0-9.,\-]`)

// FormatLocalized renders amount with locale grouping separators, using
// the same symbol placement and fallback rules as Format. Out-of-contract
// inputs (NaN, ±Inf) are normalized to zero.
func FormatLocalized(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if unit, err := xcurrency.ParseISO(code); err == nil {
		code = unit.String()
	}
	p := Lookup(code)
	numeral := localePrinter.Sprint(number.Decimal(math.Abs(amount), number.Scale(int(p.Decimals))))

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	if p.Position == After {
		b.WriteString(numeral)
		b.WriteByte(' ')
		b.WriteString(p.Symbol)
	} else {
		b.WriteString(p.Symbol)
		b.WriteString(numeral)
	}
	return b.String()
}

// LocalizedNumeral returns the grouped numeral with the currency symbol
// stripped, for inputs that render their own symbol.
func LocalizedNumeral(amount float64, code string) string {
	return strings.TrimSpace(nonNumeral.ReplaceAllString(FormatLocalized(amount, code), ""))
}
