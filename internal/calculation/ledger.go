package calculation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/payme/budget-calculator/internal/config"
	"github.com/payme/budget-calculator/internal/domain"
)

var (
	ErrMonthClosed  = errors.New("month is closed")
	ErrItemNotFound = errors.New("item not found")
)

// ApplyItem records an item in a month and routes its amount into the
// month's savings snapshot when the item carries a savings destination.
// The item gets an ID when it has none. Closed months reject the change.
func ApplyItem(plan *domain.Plan, month *domain.Month, item domain.Item) (string, error) {
	if month.Closed {
		return "", ErrMonthClosed
	}
	if err := config.ValidateItem(plan, month, item); err != nil {
		return "", err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	month.Items = append(month.Items, item)
	creditDestination(&month.Savings, item)
	return item.ID, nil
}

// RemoveItem deletes an item and reverses its savings effect.
func RemoveItem(month *domain.Month, id string) error {
	if month.Closed {
		return ErrMonthClosed
	}
	for i := range month.Items {
		if month.Items[i].ID == id {
			debitDestination(&month.Savings, month.Items[i])
			month.Items = append(month.Items[:i], month.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

// ReplaceItem swaps an existing item (matched by ID) for the given one.
// Savings balances are adjusted only when the destination or the amount
// changed: the old amount is backed out of the old destination and the
// new amount credited to the new one.
func ReplaceItem(plan *domain.Plan, month *domain.Month, item domain.Item) error {
	if month.Closed {
		return ErrMonthClosed
	}
	existing := month.Item(item.ID)
	if existing == nil {
		return fmt.Errorf("%w: %q", ErrItemNotFound, item.ID)
	}
	if err := config.ValidateItem(plan, month, item); err != nil {
		return err
	}

	if existing.Destination() != item.Destination() || !existing.Amount.Equal(item.Amount) {
		debitDestination(&month.Savings, *existing)
		creditDestination(&month.Savings, item)
	}
	*existing = item
	return nil
}

func creditDestination(snap *domain.SavingsSnapshot, item domain.Item) {
	switch item.Destination() {
	case domain.DestinationSavings:
		snap.Savings = snap.Savings.Add(item.Amount)
	case domain.DestinationRetirement:
		snap.RetirementSavings = snap.RetirementSavings.Add(item.Amount)
	}
}

func debitDestination(snap *domain.SavingsSnapshot, item domain.Item) {
	switch item.Destination() {
	case domain.DestinationSavings:
		snap.Savings = snap.Savings.Sub(item.Amount)
	case domain.DestinationRetirement:
		snap.RetirementSavings = snap.RetirementSavings.Sub(item.Amount)
	}
}

// CloseMonth freezes a month. Further ledger operations fail until it is
// reopened.
func CloseMonth(month *domain.Month) {
	month.Closed = true
}

// ReopenMonth unfreezes a month.
func ReopenMonth(month *domain.Month) {
	month.Closed = false
}
