package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type BillPaymentRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r BillPaymentRequest) Validate() error {
	var errs []string

	if !commons.IsValidBillReference(r.Reference) {
		errs = append(errs, "reference must be 6-20 uppercase alphanumeric characters")
	}
	if !commons.IsValidAmount(r.Amount) {
		errs = append(errs, "amount must be positive with at most 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type BillPaymentResponse struct {
	TransactionID   string          `json:"transactionId"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	CheckingBalance decimal.Decimal `json:"checkingBalance"`
}
