package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsDestination marks where an item's amount is routed besides being
// counted as spending for the month.
type SavingsDestination string

const (
	DestinationNone       SavingsDestination = "none"
	DestinationSavings    SavingsDestination = "savings"
	DestinationRetirement SavingsDestination = "retirement_savings"
)

// Valid reports whether d is one of the recognized destinations.
func (d SavingsDestination) Valid() bool {
	switch d {
	case DestinationNone, DestinationSavings, DestinationRetirement:
		return true
	}
	return false
}

// Category is a budget category with an optional monthly budget.
// A zero budget means spending in the category is tracked but not capped.
type Category struct {
	Name   string          `yaml:"name" json:"name"`
	Budget decimal.Decimal `yaml:"budget" json:"budget"`
}

// Item is a single recorded transaction within a month.
type Item struct {
	ID                 string             `yaml:"id,omitempty" json:"id,omitempty"`
	Category           string             `yaml:"category" json:"category"`
	Description        string             `yaml:"description" json:"description"`
	Amount             decimal.Decimal    `yaml:"amount" json:"amount"`
	SpentOn            time.Time          `yaml:"spent_on" json:"spent_on"`
	SavingsDestination SavingsDestination `yaml:"savings_destination,omitempty" json:"savings_destination,omitempty"`
}

// Destination returns the item's savings destination, defaulting to none.
func (i Item) Destination() SavingsDestination {
	if i.SavingsDestination == "" {
		return DestinationNone
	}
	return i.SavingsDestination
}

// FixedExpense is a recurring charge snapshotted into a month (rent,
// subscriptions, insurance).
type FixedExpense struct {
	Label  string          `yaml:"label" json:"label"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// SavingsSnapshot holds the savings state carried by a month.
type SavingsSnapshot struct {
	Savings           decimal.Decimal `yaml:"savings" json:"savings"`
	RetirementSavings decimal.Decimal `yaml:"retirement_savings" json:"retirement_savings"`
	SavingsGoal       decimal.Decimal `yaml:"savings_goal" json:"savings_goal"`
}

// Month is one tracked calendar month. Closed months are frozen: ledger
// operations against them fail.
type Month struct {
	Key           string          `yaml:"key" json:"key"` // YYYY-MM
	Income        decimal.Decimal `yaml:"income" json:"income"`
	FixedExpenses []FixedExpense  `yaml:"fixed_expenses,omitempty" json:"fixed_expenses,omitempty"`
	Items         []Item          `yaml:"items,omitempty" json:"items,omitempty"`
	Savings       SavingsSnapshot `yaml:"savings" json:"savings"`
	Closed        bool            `yaml:"closed,omitempty" json:"closed,omitempty"`
}

// FixedTotal sums the month's fixed expenses.
func (m *Month) FixedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, fe := range m.FixedExpenses {
		total = total.Add(fe.Amount)
	}
	return total
}

// ItemTotal sums the month's itemized spending.
func (m *Month) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range m.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// Item returns the item with the given id, or nil.
func (m *Month) Item(id string) *Item {
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i]
		}
	}
	return nil
}

// Plan is the top-level budget document: one currency, a category set,
// and a run of tracked months.
type Plan struct {
	Name       string     `yaml:"name" json:"name"`
	Currency   string     `yaml:"currency" json:"currency"`
	Categories []Category `yaml:"categories" json:"categories"`
	Months     []Month    `yaml:"months" json:"months"`
}

// Category returns the named category, or nil when absent.
func (p *Plan) Category(name string) *Category {
	for i := range p.Categories {
		if p.Categories[i].Name == name {
			return &p.Categories[i]
		}
	}
	return nil
}

// Month returns the month with the given key, or nil when absent.
func (p *Plan) Month(key string) *Month {
	for i := range p.Months {
		if p.Months[i].Key == key {
			return &p.Months[i]
		}
	}
	return nil
}
