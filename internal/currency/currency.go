// Package currency renders monetary amounts for display.
//
// The canonical formatter works off a fixed profile table (symbol, symbol
// position, decimal places per currency code) and never fails: unknown
// codes fall back to a default profile so formatting can never block
// rendering. Amounts are rounded half away from zero to the profile's
// decimal count. No thousands separators are introduced here; see
// locale.go for the grouped, locale-aware variant.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Pos indicates where a currency symbol is printed relative to the numeral.
type Pos int

const (
	// Before places the symbol directly in front of the numeral ("$10.00").
	Before Pos = iota
	// After places the symbol after the numeral, separated by one space ("10.00 €").
	After
)

// Profile is the static display metadata for one currency code.
type Profile struct {
	Symbol   string
	Position Pos
	Decimals int32
}

// defaultProfile is used for any unrecognized code.
var defaultProfile = Profile{Symbol: "$", Position: Before, Decimals: 2}

// profiles is populated once and treated as read-only afterwards.
// JPY is the only zero-decimal currency in this set.
var profiles = map[string]Profile{
	"USD": {Symbol: "$", Position: Before, Decimals: 2},
	"EUR": {Symbol: "€", Position: After, Decimals: 2},
	"GBP": {Symbol: "£", Position: Before, Decimals: 2},
	"JPY": {Symbol: "¥", Position: Before, Decimals: 0},
	"CAD": {Symbol: "C$", Position: Before, Decimals: 2},
	"AUD": {Symbol: "A$", Position: Before, Decimals: 2},
	"CHF": {Symbol: "CHF", Position: After, Decimals: 2},
	"CNY": {Symbol: "¥", Position: Before, Decimals: 2},
	"INR": {Symbol: "₹", Position: Before, Decimals: 2},
	"MXN": {Symbol: "MX$", Position: Before, Decimals: 2},
	"BRL": {Symbol: "R$", Position: Before, Decimals: 2},
	"ZAR": {Symbol: "R", Position: Before, Decimals: 2},
}

// Lookup resolves a currency code to its profile, falling back to the
// default profile ($, before, 2 decimals) for unknown codes.
func Lookup(code string) Profile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return defaultProfile
}

// Known reports whether code has an explicit profile.
func Known(code string) bool {
	_, ok := profiles[code]
	return ok
}

// Codes returns the recognized currency codes.
func Codes() []string {
	out := make([]string, 0, len(profiles))
	for code := range profiles {
		out = append(out, code)
	}
	return out
}

// Symbol returns the display symbol for a currency code ("$" for
// unrecognized codes).
func Symbol(code string) string {
	return Lookup(code).Symbol
}

// Format renders amount as a display string for the given currency code.
//
// The absolute value is rounded half away from zero to the profile's
// decimal count and rendered with exactly that many fractional digits.
// A single leading "-" marks strictly negative input and always precedes
// the symbol. Symbol placement follows the profile: no separator when
// the symbol leads, one space when it trails.
func Format(amount decimal.Decimal, code string) string {
	p := Lookup(code)
	numeral := amount.Abs().StringFixed(p.Decimals)

	var b strings.Builder
	b.Grow(len(numeral) + len(p.Symbol) + 2)
	if amount.IsNegative() {
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

// FormatFloat is Format for float64 callers (UI forms, aggregation
// totals). NaN and infinite inputs are out of contract; they are
// normalized to zero so the formatter still returns a usable string.
func FormatFloat(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return Format(decimal.NewFromFloat(amount), code)
}
