package integration

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payme/budget-calculator/internal/calculation"
	"github.com/payme/budget-calculator/internal/config"
	"github.com/payme/budget-calculator/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	results, err := engine.SummarizePlan(plan)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "json", "csv", "html"} {
		path, err := output.GenerateReport(results, format, dir)
		assert.NoError(t, err, "format %s", format)
		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestBasicAggregation(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	results, err := engine.SummarizePlan(plan)
	require.NoError(t, err)

	require.Len(t, results.Months, 2)
	assert.Equal(t, "2026-07", results.Months[0].Key)
	assert.Equal(t, "2026-08", results.Months[1].Key)
	assert.True(t, results.Months[0].Closed)
	assert.True(t, results.TotalIncome.Equal(decimal.NewFromInt(6400)), "TotalIncome = %s", results.TotalIncome)

	aug := results.Months[1]
	assert.True(t, aug.FixedTotal.Equal(decimal.NewFromFloat(1139.99)), "FixedTotal = %s", aug.FixedTotal)
	assert.True(t, aug.ItemTotal.Equal(decimal.NewFromFloat(361.35)), "ItemTotal = %s", aug.ItemTotal)
	assert.True(t, aug.Savings.Percent.Equal(decimal.NewFromInt(36)), "Savings.Percent = %s", aug.Savings.Percent)
}

func TestLedgerThroughSummary(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	month := plan.Month("2026-08")
	require.NotNil(t, month)
	item := month.Items[0]
	item.ID = ""
	item.Description = "second shop"
	item.Amount = decimal.NewFromFloat(38.65)

	_, err = calculation.ApplyItem(plan, month, item)
	require.NoError(t, err)

	engine := calculation.NewEngine()
	s, err := engine.SummarizeMonth(plan, "2026-08")
	require.NoError(t, err)
	assert.True(t, s.ItemTotal.Equal(decimal.NewFromFloat(400.00)), "ItemTotal = %s", s.ItemTotal)

	// Closed months stay frozen end to end.
	july := plan.Month("2026-07")
	_, err = calculation.ApplyItem(plan, july, item)
	assert.ErrorIs(t, err, calculation.ErrMonthClosed)
}

func TestConsoleReportRendersCurrency(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	results, err := engine.SummarizePlan(plan)
	require.NoError(t, err)

	data, err := output.ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Household Budget")
	// EUR renders symbol-after with no grouping.
	assert.Contains(t, text, "3200.00 €")
}
