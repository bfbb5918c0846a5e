package domain

import "github.com/shopspring/decimal"

// CategoryBreakdown is one category's aggregated spending for a month.
type CategoryBreakdown struct {
	Name            string          `json:"name"`
	Spent           decimal.Decimal `json:"spent"`
	Budget          decimal.Decimal `json:"budget"`
	PercentOfSpend  decimal.Decimal `json:"percent_of_spend"`
	PercentOfBudget decimal.Decimal `json:"percent_of_budget"`
	OverBudget      bool            `json:"over_budget"`
}

// ChartSeries is a label/value pairing ready for chart rendering,
// ordered by descending amount.
type ChartSeries struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// SavingsProgress reports progress toward the month's savings goal.
// Percent is capped at 100.
type SavingsProgress struct {
	Current decimal.Decimal `json:"current"`
	Goal    decimal.Decimal `json:"goal"`
	Percent decimal.Decimal `json:"percent"`
	GoalMet bool            `json:"goal_met"`
}

// MonthSummary is the complete aggregation for one month.
type MonthSummary struct {
	Key        string              `json:"key"`
	Label      string              `json:"label"`
	Currency   string              `json:"currency"`
	Income     decimal.Decimal     `json:"income"`
	FixedTotal decimal.Decimal     `json:"fixed_total"`
	ItemTotal  decimal.Decimal     `json:"item_total"`
	TotalSpent decimal.Decimal     `json:"total_spent"`
	Remaining  decimal.Decimal     `json:"remaining"`
	ByCategory []CategoryBreakdown `json:"by_category"`
	Chart      ChartSeries         `json:"chart"`
	Savings    SavingsProgress     `json:"savings"`
	Closed     bool                `json:"closed"`
}

// PlanComparison strings month summaries together for printable reports.
type PlanComparison struct {
	PlanName    string          `json:"plan_name"`
	Currency    string          `json:"currency"`
	Months      []MonthSummary  `json:"months"`
	TotalIncome decimal.Decimal `json:"total_income"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}
