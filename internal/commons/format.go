package commons

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRIB groups the 24-character RIB into blocks of four for display.
func FormatRIB(rib string) string {
	trimmed := strings.TrimSpace(rib)
	if trimmed == "" {
		return trimmed
	}
	var blocks []string
	for start := 0; start < len(trimmed); start += 4 {
		end := start + 4
		if end > len(trimmed) {
			end = len(trimmed)
		}
		blocks = append(blocks, trimmed[start:end])
	}
	return strings.Join(blocks, " ")
}

// FormatAmount renders an amount the fr-MA way: space as thousands separator,
// comma as decimal mark, two fraction digits, currency code suffix.
// Example: 15420.5 MAD -> "15 420,50 MAD".
func FormatAmount(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := strings.Join(grouped, " ") + "," + fracPart
	if negative {
		out = "-" + out
	}
	if trimmed := strings.TrimSpace(currency); trimmed != "" {
		out += " " + trimmed
	}
	return out
}
