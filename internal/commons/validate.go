package commons

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailPattern   = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)
	ibanPattern    = regexp.MustCompile(`^MA\d{2}[A-Z0-9]{20,30}$`)
	phonePattern   = regexp.MustCompile(`^(05|06|07)\d{8}$`)
	billRefPattern = regexp.MustCompile(`^[A-Z0-9]{6,20}$`)
	namePattern    = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s-]{2,50}$`)
	spacePattern   = regexp.MustCompile(`\s`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPassword requires at least 8 characters with one lowercase letter,
// one uppercase letter and one digit. Written out by hand because RE2 has no
// lookahead.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// NormalizeIBAN strips all whitespace and uppercases; this is the form stored
// and validated.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(spacePattern.ReplaceAllString(iban, ""))
}

func IsValidIBAN(iban string) bool {
	return ibanPattern.MatchString(NormalizeIBAN(iban))
}

func NormalizePhoneNumber(phone string) string {
	return spacePattern.ReplaceAllString(phone, "")
}

func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(NormalizePhoneNumber(phone))
}

// IsValidAmount accepts positive amounts with at most 2 fractional digits.
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Exponent() >= -2
}

func IsValidBillReference(reference string) bool {
	return billRefPattern.MatchString(strings.TrimSpace(reference))
}

// IsValidDisplayName accepts 2-50 characters of letters (accented included),
// spaces and hyphens.
func IsValidDisplayName(name string) bool {
	return namePattern.MatchString(strings.TrimSpace(name))
}
