package output

import (
	"bytes"
	"encoding/csv"

	"github.com/payme/budget-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per month/category pair).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Category", "Spent", "Budget", "PercentOfSpend", "PercentOfBudget", "OverBudget"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range results.Months {
		for _, b := range m.ByCategory {
			row := []string{
				m.Key,
				b.Name,
				b.Spent.StringFixed(2),
				b.Budget.StringFixed(2),
				b.PercentOfSpend.StringFixed(2),
				b.PercentOfBudget.StringFixed(2),
				boolToString(b.OverBudget),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
