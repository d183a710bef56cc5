package domain

import "time"

// Beneficiary IBANs are stored whitespace-stripped and uppercased.
type Beneficiary struct {
	ID       string
	Name     string
	BankName string
	IBAN     string
	Blocked  bool
	AddedAt  time.Time
}
