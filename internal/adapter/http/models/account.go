package models

import "github.com/shopspring/decimal"

type AccountResponse struct {
	AccountNumber        string          `json:"accountNumber"`
	SavingsAccountNumber string          `json:"savingsAccountNumber"`
	RIB                  string          `json:"rib"`
	SavingsRIB           string          `json:"savingsRib"`
	FormattedRIB         string          `json:"formattedRib"`
	FormattedSavingsRIB  string          `json:"formattedSavingsRib"`
	CheckingBalance      decimal.Decimal `json:"checkingBalance"`
	SavingsBalance       decimal.Decimal `json:"savingsBalance"`
	FormattedChecking    string          `json:"formattedChecking"`
	FormattedSavings     string          `json:"formattedSavings"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Recipient   string          `json:"recipient,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
}
