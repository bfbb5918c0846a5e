package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/payme/budget-calculator/internal/domain"
	"github.com/payme/budget-calculator/pkg/dateutil"
)

// InputParser handles loading and validation of budget plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a budget plan from a YAML file. Items without an ID
// are assigned one so ledger operations can address them.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	AssignItemIDs(&plan)
	return &plan, nil
}

// AssignItemIDs gives every item without an identifier a fresh one.
func AssignItemIDs(plan *domain.Plan) {
	for mi := range plan.Months {
		for ii := range plan.Months[mi].Items {
			if plan.Months[mi].Items[ii].ID == "" {
				plan.Months[mi].Items[ii].ID = uuid.NewString()
			}
		}
	}
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	// An empty or unknown currency code is allowed: the formatter falls
	// back to its default profile. Only the structure is validated here.

	if len(plan.Categories) == 0 {
		return fmt.Errorf("no categories provided")
	}
	seenCat := make(map[string]bool, len(plan.Categories))
	for i, cat := range plan.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
		if seenCat[cat.Name] {
			return fmt.Errorf("category %q: duplicate name", cat.Name)
		}
		seenCat[cat.Name] = true
		if cat.Budget.LessThan(decimal.Zero) {
			return fmt.Errorf("category %q: budget cannot be negative", cat.Name)
		}
	}

	if len(plan.Months) == 0 {
		return fmt.Errorf("no months provided")
	}
	seenMonth := make(map[string]bool, len(plan.Months))
	for _, month := range plan.Months {
		if err := ip.validateMonth(plan, &month); err != nil {
			return fmt.Errorf("month %q validation failed: %w", month.Key, err)
		}
		if seenMonth[month.Key] {
			return fmt.Errorf("month %q: duplicate key", month.Key)
		}
		seenMonth[month.Key] = true
	}

	return nil
}

// validateMonth validates a single month's data
func (ip *InputParser) validateMonth(plan *domain.Plan, month *domain.Month) error {
	if _, err := dateutil.ParseMonthKey(month.Key); err != nil {
		return err
	}
	if month.Income.LessThan(decimal.Zero) {
		return fmt.Errorf("income cannot be negative")
	}

	for i, fe := range month.FixedExpenses {
		if fe.Label == "" || len(fe.Label) > 100 {
			return fmt.Errorf("fixed expense %d: label must be 1-100 characters", i)
		}
		if fe.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("fixed expense %q: amount cannot be negative", fe.Label)
		}
	}

	for i, item := range month.Items {
		if err := ValidateItem(plan, month, item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	if month.Savings.Savings.LessThan(decimal.Zero) ||
		month.Savings.RetirementSavings.LessThan(decimal.Zero) ||
		month.Savings.SavingsGoal.LessThan(decimal.Zero) {
		return fmt.Errorf("savings values cannot be negative")
	}

	return nil
}

// ValidateItem checks one item against the plan's category set and the
// month it belongs to. Shared with the ledger so items added after load
// obey the same rules as items parsed from a file.
func ValidateItem(plan *domain.Plan, month *domain.Month, item domain.Item) error {
	if item.Description == "" || len(item.Description) > 200 {
		return fmt.Errorf("description must be 1-200 characters")
	}
	if item.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	if plan.Category(item.Category) == nil {
		return fmt.Errorf("unknown category %q", item.Category)
	}
	if !item.SpentOn.IsZero() && !dateutil.InMonth(item.SpentOn, month.Key) {
		return fmt.Errorf("spent_on %s is outside month %s", item.SpentOn.Format("2006-01-02"), month.Key)
	}
	if item.SavingsDestination != "" && !item.SavingsDestination.Valid() {
		return fmt.Errorf("invalid savings destination %q", item.SavingsDestination)
	}
	return nil
}

// CreateExamplePlan creates an example budget plan
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	aug := func(day int) time.Time {
		return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
	}

	return &domain.Plan{
		Name:     "Household Budget",
		Currency: "USD",
		Categories: []domain.Category{
			{Name: "Groceries", Budget: decimal.NewFromInt(450)},
			{Name: "Transport", Budget: decimal.NewFromInt(150)},
			{Name: "Leisure", Budget: decimal.NewFromInt(200)},
			{Name: "Savings", Budget: decimal.Zero},
		},
		Months: []domain.Month{
			{
				Key:    "2026-08",
				Income: decimal.NewFromInt(3400),
				FixedExpenses: []domain.FixedExpense{
					{Label: "Rent", Amount: decimal.NewFromInt(1150)},
					{Label: "Utilities", Amount: decimal.NewFromFloat(96.40)},
					{Label: "Internet", Amount: decimal.NewFromFloat(39.99)},
				},
				Items: []domain.Item{
					{Category: "Groceries", Description: "weekly shop", Amount: decimal.NewFromFloat(87.35), SpentOn: aug(3)},
					{Category: "Transport", Description: "fuel", Amount: decimal.NewFromFloat(54.20), SpentOn: aug(6)},
					{Category: "Leisure", Description: "cinema", Amount: decimal.NewFromFloat(24.00), SpentOn: aug(8)},
					{Category: "Savings", Description: "monthly transfer", Amount: decimal.NewFromInt(300), SpentOn: aug(1), SavingsDestination: domain.DestinationSavings},
				},
				Savings: domain.SavingsSnapshot{
					Savings:           decimal.NewFromInt(1800),
					RetirementSavings: decimal.NewFromInt(9500),
					SavingsGoal:       decimal.NewFromInt(5000),
				},
			},
		},
	}
}

// SavePlan writes a plan back to a YAML file.
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
