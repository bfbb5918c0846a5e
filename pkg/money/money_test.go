package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestArithmetic(t *testing.T) {
	a := New(10.50)
	b := New(2.25)

	if got := a.Add(b).String(); got != "12.75" {
		t.Errorf("Add = %q", got)
	}
	if got := a.Sub(b).String(); got != "8.25" {
		t.Errorf("Sub = %q", got)
	}
	if got := a.Mul(decimal.NewFromInt(3)).String(); got != "31.50" {
		t.Errorf("Mul = %q", got)
	}
}

func TestFromString(t *testing.T) {
	m, err := FromString("19.99")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	if got := m.String(); got != "19.99" {
		t.Errorf("String = %q", got)
	}
	if _, err := FromString("abc"); err == nil {
		t.Error("FromString expected error for invalid input")
	}
}

func TestPercentOf(t *testing.T) {
	part := New(25)
	total := New(200)
	if got := part.PercentOf(total); !got.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("PercentOf = %s", got)
	}
	if got := part.PercentOf(Zero()); !got.IsZero() {
		t.Errorf("PercentOf zero total = %s", got)
	}
}

func TestComparisons(t *testing.T) {
	a := New(5)
	b := New(7)
	if !a.LessThan(b) || !b.GreaterThan(a) {
		t.Error("comparison mismatch")
	}
	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Error("Min/Max mismatch")
	}
	if !FromDecimal(decimal.NewFromInt(5)).Equal(a) {
		t.Error("Equal mismatch")
	}
}

func TestRound(t *testing.T) {
	if got := New(1.005).Round().String(); got != "1.01" {
		t.Errorf("Round = %q", got)
	}
}

func TestFormat(t *testing.T) {
	if got := New(1234.5).Format("USD"); got != "$1234.50" {
		t.Errorf("Format USD = %q", got)
	}
	if got := New(-3).Format("EUR"); got != "-3.00 €" {
		t.Errorf("Format EUR = %q", got)
	}
}
