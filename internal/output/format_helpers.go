package output

import (
	"github.com/shopspring/decimal"

	"github.com/payme/budget-calculator/internal/currency"
)

// FormatAmount renders a decimal through the fixed currency table.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal, code string) string { return currency.Format(amount, code) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
