package domain

import (
	"fmt"
	"strings"
)

type Currency string

const (
	CurrencyMAD Currency = "MAD"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

func ParseCurrency(value string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(CurrencyMAD):
		return CurrencyMAD, nil
	case string(CurrencyEUR):
		return CurrencyEUR, nil
	case string(CurrencyUSD):
		return CurrencyUSD, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", value)
	}
}
