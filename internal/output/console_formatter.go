package output

import (
	"bytes"
	"fmt"

	"github.com/payme/budget-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "BUDGET SUMMARY: %s\n", results.PlanName)
	fmt.Fprintln(&buf, "================================")
	cur := results.Currency
	fmt.Fprintf(&buf, "Total Income: %s  Total Spent: %s\n", FormatAmount(results.TotalIncome, cur), FormatAmount(results.TotalSpent, cur))
	fmt.Fprintln(&buf)

	for _, m := range results.Months {
		status := ""
		if m.Closed {
			status = " [closed]"
		}
		fmt.Fprintf(&buf, "%s (%s)%s: Income=%s Fixed=%s Items=%s Remaining=%s\n",
			m.Label, m.Key, status,
			FormatAmount(m.Income, cur),
			FormatAmount(m.FixedTotal, cur),
			FormatAmount(m.ItemTotal, cur),
			FormatAmount(m.Remaining, cur),
		)
		for _, b := range m.ByCategory {
			line := fmt.Sprintf("  %-16s %s (%s of items)", b.Name, FormatAmount(b.Spent, cur), FormatPercentage(b.PercentOfSpend))
			if b.Budget.IsPositive() {
				line += fmt.Sprintf(" budget %s (%s)", FormatAmount(b.Budget, cur), FormatPercentage(b.PercentOfBudget))
			}
			if b.OverBudget {
				line += " OVER"
			}
			fmt.Fprintln(&buf, line)
		}
		if m.Savings.Goal.IsPositive() {
			fmt.Fprintf(&buf, "  Savings goal: %s / %s (%s)\n",
				FormatAmount(m.Savings.Current, cur),
				FormatAmount(m.Savings.Goal, cur),
				FormatPercentage(m.Savings.Percent),
			)
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}
