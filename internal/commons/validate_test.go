package commons

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsValidIBAN(t *testing.T) {
	valid := []string{
		"MA641234567890123456789012",
		"MA64 1234 5678 9012 3456 7890 12",
		"ma641234567890123456789012",
	}
	for _, iban := range valid {
		if !IsValidIBAN(iban) {
			t.Fatalf("expected %q to be valid", iban)
		}
	}

	invalid := []string{
		"FR7612345678901234567890123",
		"MA64123",
		"",
		"MAXX1234567890123456789012",
	}
	for _, iban := range invalid {
		if IsValidIBAN(iban) {
			t.Fatalf("expected %q to be invalid", iban)
		}
	}
}

func TestNormalizeIBAN(t *testing.T) {
	got := NormalizeIBAN("ma64 1234 5678 9012 3456 7890 12")
	if got != "MA641234567890123456789012" {
		t.Fatalf("expected stripped uppercase IBAN, got %q", got)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	for _, phone := range []string{"0512345678", "0612345678", "0712345678", "06 12 34 56 78"} {
		if !IsValidPhoneNumber(phone) {
			t.Fatalf("expected %q to be valid", phone)
		}
	}
	for _, phone := range []string{"0212345678", "061234567", "06123456789", "abc"} {
		if IsValidPhoneNumber(phone) {
			t.Fatalf("expected %q to be invalid", phone)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	for _, raw := range []string{"0.01", "100", "15420.50"} {
		if !IsValidAmount(decimal.RequireFromString(raw)) {
			t.Fatalf("expected %s to be valid", raw)
		}
	}
	for _, raw := range []string{"0", "-5", "10.123"} {
		if IsValidAmount(decimal.RequireFromString(raw)) {
			t.Fatalf("expected %s to be invalid", raw)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if !IsValidPassword("Str0ngPass") {
		t.Fatal("expected password with all classes to be valid")
	}
	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		if IsValidPassword(password) {
			t.Fatalf("expected %q to be invalid", password)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("ahmed.benali@example.com") {
		t.Fatal("expected address to be valid")
	}
	for _, email := range []string{"not-an-email", "a@b", ""} {
		if IsValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidBillReference(t *testing.T) {
	if !IsValidBillReference("ELEC123456") {
		t.Fatal("expected reference to be valid")
	}
	for _, ref := range []string{"abc123", "SHORT", "WAY-TOO-MANY-CHARS-IN-HERE"} {
		if IsValidBillReference(ref) {
			t.Fatalf("expected %q to be invalid", ref)
		}
	}
}

func TestIsValidDisplayName(t *testing.T) {
	for _, name := range []string{"Ahmed", "Fatima Zahra", "Jean-Pierre", "Aïcha"} {
		if !IsValidDisplayName(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}
	for _, name := range []string{"A", "Name123", ""} {
		if IsValidDisplayName(name) {
			t.Fatalf("expected %q to be invalid", name)
		}
	}
}
