// Package calculation aggregates budget plan data into month and plan
// summaries: category grouping, totals, percentages, chart series,
// budget-vs-actual, and savings goal progress.
package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/payme/budget-calculator/internal/domain"
	"github.com/payme/budget-calculator/pkg/dateutil"
	"github.com/payme/budget-calculator/pkg/money"
)

var (
	ErrMonthNotFound = errors.New("month not found")
)

var hundred = decimal.NewFromInt(100)

// Engine computes summaries over a budget plan. It holds no plan state;
// the same engine can be reused across plans and goroutines.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SummarizeMonth aggregates a single month of the plan.
func (e *Engine) SummarizeMonth(plan *domain.Plan, key string) (*domain.MonthSummary, error) {
	month := plan.Month(key)
	if month == nil {
		return nil, fmt.Errorf("%w: %q", ErrMonthNotFound, key)
	}
	return e.summarize(plan, month), nil
}

// SummarizePlan aggregates every month in the plan, ordered by month key,
// for month-over-month comparison and printable reports.
func (e *Engine) SummarizePlan(plan *domain.Plan) (*domain.PlanComparison, error) {
	if len(plan.Months) == 0 {
		return nil, fmt.Errorf("%w: plan has no months", ErrMonthNotFound)
	}

	keys := make([]string, 0, len(plan.Months))
	for i := range plan.Months {
		keys = append(keys, plan.Months[i].Key)
	}
	sort.Strings(keys)

	cmp := &domain.PlanComparison{
		PlanName:    plan.Name,
		Currency:    plan.Currency,
		TotalIncome: decimal.Zero,
		TotalSpent:  decimal.Zero,
	}
	for _, key := range keys {
		s := e.summarize(plan, plan.Month(key))
		cmp.Months = append(cmp.Months, *s)
		cmp.TotalIncome = cmp.TotalIncome.Add(s.Income)
		cmp.TotalSpent = cmp.TotalSpent.Add(s.TotalSpent)
	}
	e.Logger.Debugf("summarized plan %q: %d months", plan.Name, len(cmp.Months))
	return cmp, nil
}

func (e *Engine) summarize(plan *domain.Plan, month *domain.Month) *domain.MonthSummary {
	fixedTotal := month.FixedTotal()
	itemTotal := month.ItemTotal()
	totalSpent := fixedTotal.Add(itemTotal)

	s := &domain.MonthSummary{
		Key:        month.Key,
		Currency:   plan.Currency,
		Income:     month.Income,
		FixedTotal: fixedTotal,
		ItemTotal:  itemTotal,
		TotalSpent: totalSpent,
		Remaining:  month.Income.Sub(totalSpent),
		ByCategory: breakdown(plan, month, itemTotal),
		Savings:    savingsProgress(month.Savings),
		Closed:     month.Closed,
	}
	if t, err := dateutil.ParseMonthKey(month.Key); err == nil {
		s.Label = dateutil.MonthLabel(t)
	}
	s.Chart = chartSeries(s.ByCategory)
	return s
}

// breakdown groups items by category. Categories with no spending and no
// budget are omitted; budgeted categories always appear so an untouched
// budget still shows up in reports.
func breakdown(plan *domain.Plan, month *domain.Month, itemTotal decimal.Decimal) []domain.CategoryBreakdown {
	spent := make(map[string]decimal.Decimal)
	for _, it := range month.Items {
		spent[it.Category] = spent[it.Category].Add(it.Amount)
	}

	var out []domain.CategoryBreakdown
	seen := make(map[string]bool)
	for _, cat := range plan.Categories {
		amount := spent[cat.Name]
		if amount.IsZero() && cat.Budget.IsZero() {
			continue
		}
		out = append(out, newBreakdown(cat.Name, amount, cat.Budget, itemTotal))
		seen[cat.Name] = true
	}
	// Items may reference categories not in the plan when callers build
	// months by hand; keep their spending visible rather than dropping it.
	for name, amount := range spent {
		if !seen[name] {
			out = append(out, newBreakdown(name, amount, decimal.Zero, itemTotal))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spent.Equal(out[j].Spent) {
			return out[i].Spent.GreaterThan(out[j].Spent)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func newBreakdown(name string, spent, budget, itemTotal decimal.Decimal) domain.CategoryBreakdown {
	b := domain.CategoryBreakdown{
		Name:           name,
		Spent:          spent,
		Budget:         budget,
		PercentOfSpend: percent(spent, itemTotal),
	}
	if budget.GreaterThan(decimal.Zero) {
		b.PercentOfBudget = percent(spent, budget)
		b.OverBudget = spent.GreaterThan(budget)
	}
	return b
}

func chartSeries(byCategory []domain.CategoryBreakdown) domain.ChartSeries {
	series := domain.ChartSeries{
		Labels: make([]string, 0, len(byCategory)),
		Values: make([]decimal.Decimal, 0, len(byCategory)),
	}
	for _, b := range byCategory {
		if b.Spent.IsZero() {
			continue
		}
		series.Labels = append(series.Labels, b.Name)
		series.Values = append(series.Values, b.Spent)
	}
	return series
}

func savingsProgress(snap domain.SavingsSnapshot) domain.SavingsProgress {
	p := domain.SavingsProgress{
		Current: snap.Savings,
		Goal:    snap.SavingsGoal,
	}
	if snap.SavingsGoal.GreaterThan(decimal.Zero) {
		pct := percent(snap.Savings, snap.SavingsGoal)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		p.Percent = pct
		p.GoalMet = snap.Savings.GreaterThanOrEqual(snap.SavingsGoal)
	}
	return p
}

// percent returns part/whole as a percentage rounded to 2 decimals,
// zero when the whole is zero.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	return money.FromDecimal(part).PercentOf(money.FromDecimal(whole))
}
