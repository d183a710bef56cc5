package commons

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		raw      string
		currency string
		want     string
	}{
		{"15420.5", "MAD", "15 420,50 MAD"},
		{"8500", "MAD", "8 500,00 MAD"},
		{"0.5", "EUR", "0,50 EUR"},
		{"1234567.89", "MAD", "1 234 567,89 MAD"},
		{"-42.1", "MAD", "-42,10 MAD"},
		{"100", "", "100,00"},
	}
	for _, tc := range cases {
		got := FormatAmount(decimal.RequireFromString(tc.raw), tc.currency)
		if got != tc.want {
			t.Fatalf("FormatAmount(%s, %q) = %q, want %q", tc.raw, tc.currency, got, tc.want)
		}
	}
}

func TestFormatRIB(t *testing.T) {
	got := FormatRIB("230800100000012345678942")
	if got != "2308 0010 0000 0123 4567 8942" {
		t.Fatalf("expected grouped RIB, got %q", got)
	}
	if FormatRIB("") != "" {
		t.Fatal("expected empty RIB to stay empty")
	}
}
