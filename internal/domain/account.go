package domain

import "github.com/shopspring/decimal"

// Account balances are mutated only through the ledger service; every other
// consumer sees copies taken under the session lock.
type Account struct {
	AccountNumber        string
	SavingsAccountNumber string
	RIB                  string
	SavingsRIB           string
	CheckingBalance      decimal.Decimal
	SavingsBalance       decimal.Decimal
}
