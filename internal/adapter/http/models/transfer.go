package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type BeneficiaryTransferRequest struct {
	BeneficiaryID string          `json:"beneficiaryId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

func (r BeneficiaryTransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.BeneficiaryID) == "" {
		errs = append(errs, "beneficiaryId is required")
	}
	if !commons.IsValidAmount(r.Amount) {
		errs = append(errs, "amount must be positive with at most 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SavingsTransferRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r SavingsTransferRequest) Validate() error {
	if !commons.IsValidAmount(r.Amount) {
		return errors.New("amount must be positive with at most 2 decimal places")
	}
	return nil
}

type TransferResponse struct {
	TransactionID   string          `json:"transactionId"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Recipient       string          `json:"recipient,omitempty"`
	CheckingBalance decimal.Decimal `json:"checkingBalance"`
	SavingsBalance  decimal.Decimal `json:"savingsBalance"`
}
