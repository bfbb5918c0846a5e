package output_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payme/budget-calculator/internal/domain"
	"github.com/payme/budget-calculator/internal/output"
)

func sampleComparison() *domain.PlanComparison {
	return &domain.PlanComparison{
		PlanName:    "household",
		Currency:    "EUR",
		TotalIncome: decimal.NewFromInt(3000),
		TotalSpent:  decimal.NewFromInt(1460),
		Months: []domain.MonthSummary{
			{
				Key:        "2026-08",
				Label:      "August 2026",
				Currency:   "EUR",
				Income:     decimal.NewFromInt(3000),
				FixedTotal: decimal.NewFromInt(1040),
				ItemTotal:  decimal.NewFromInt(420),
				TotalSpent: decimal.NewFromInt(1460),
				Remaining:  decimal.NewFromInt(1540),
				ByCategory: []domain.CategoryBreakdown{
					{
						Name:            "Groceries",
						Spent:           decimal.NewFromInt(300),
						Budget:          decimal.NewFromInt(400),
						PercentOfSpend:  decimal.NewFromFloat(71.43),
						PercentOfBudget: decimal.NewFromInt(75),
					},
					{
						Name:            "Transport",
						Spent:           decimal.NewFromInt(120),
						Budget:          decimal.NewFromInt(100),
						PercentOfSpend:  decimal.NewFromFloat(28.57),
						PercentOfBudget: decimal.NewFromInt(120),
						OverBudget:      true,
					},
				},
				Chart: domain.ChartSeries{
					Labels: []string{"Groceries", "Transport"},
					Values: []decimal.Decimal{decimal.NewFromInt(300), decimal.NewFromInt(120)},
				},
				Savings: domain.SavingsProgress{
					Current: decimal.NewFromInt(1500),
					Goal:    decimal.NewFromInt(3000),
					Percent: decimal.NewFromInt(50),
				},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console-lite", "console-lite"},
		{"console", "console-lite"},
		{"text", "console-lite"},
		{"CSV", "csv"},
		{"json-pretty", "json"},
		{"html-report", "html"},
	}
	for _, tt := range tests {
		f := output.GetFormatterByName(tt.in)
		require.NotNil(t, f, "format %q", tt.in)
		assert.Equal(t, tt.want, f.Name(), "format %q", tt.in)
	}
	assert.Nil(t, output.GetFormatterByName("pdf"))
}

func TestAvailableNames(t *testing.T) {
	assert.Equal(t, []string{"console-lite", "csv", "html", "json"}, output.AvailableFormatterNames())
	assert.Contains(t, output.AvailableFormatAliases(), "console")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := output.ConsoleFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "BUDGET SUMMARY: household")
	assert.Contains(t, text, "August 2026 (2026-08)")
	// EUR places the symbol after the numeral.
	assert.Contains(t, text, "3000.00 €")
	assert.Contains(t, text, "Groceries")
	assert.Contains(t, text, "OVER")
	assert.Contains(t, text, "Savings goal: 1500.00 € / 3000.00 € (50.00%)")
}

func TestCSVFormatter(t *testing.T) {
	data, err := output.CSVSummarizer{}.Format(sampleComparison())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Month", "Category", "Spent", "Budget", "PercentOfSpend", "PercentOfBudget", "OverBudget"}, records[0])
	assert.Equal(t, []string{"2026-08", "Groceries", "300.00", "400.00", "71.43", "75.00", "false"}, records[1])
	assert.Equal(t, []string{"2026-08", "Transport", "120.00", "100.00", "28.57", "120.00", "true"}, records[2])
}

func TestJSONFormatter(t *testing.T) {
	data, err := output.JSONFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	var got domain.PlanComparison
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "household", got.PlanName)
	require.Len(t, got.Months, 1)
	assert.True(t, got.Months[0].TotalSpent.Equal(decimal.NewFromInt(1460)))
}

func TestHTMLFormatter(t *testing.T) {
	data, err := output.HTMLFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<title>Budget Report: household</title>")
	assert.Contains(t, html, "August 2026")
	assert.Contains(t, html, "300.00 €")
	assert.Contains(t, html, `class="over"`)
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	path, err := output.GenerateReport(sampleComparison(), "json", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))
	assert.True(t, json.Valid(data))
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := output.GenerateReport(sampleComparison(), "pdf", t.TempDir())
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
