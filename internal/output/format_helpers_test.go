package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatAmount(v, "USD")
	want := "$1234.57"
	if got != want {
		t.Errorf("FormatAmount(%v) = %q, want %q", v, got, want)
	}
	if got := FormatAmount(v, "EUR"); got != "1234.57 €" {
		t.Errorf("FormatAmount EUR = %q", got)
	}
	if got := FormatAmount(v, "ZZZ"); got != "$1234.57" {
		t.Errorf("FormatAmount fallback = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}
