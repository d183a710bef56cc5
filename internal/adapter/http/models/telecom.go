package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

type RechargeRequest struct {
	Operator    string          `json:"operator"`
	PhoneNumber string          `json:"phoneNumber"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r RechargeRequest) Validate() error {
	var errs []string

	if _, err := domain.ParseTelecomOperator(r.Operator); err != nil {
		errs = append(errs, "operator must be one of inwi, IAM, Orange")
	}
	if !commons.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, "phoneNumber must match 05/06/07 followed by 8 digits")
	}
	if !commons.IsValidAmount(r.Amount) {
		errs = append(errs, "amount must be positive with at most 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RechargeResponse struct {
	TransactionID   string          `json:"transactionId"`
	Operator        string          `json:"operator"`
	PhoneNumber     string          `json:"phoneNumber"`
	Amount          decimal.Decimal `json:"amount"`
	CheckingBalance decimal.Decimal `json:"checkingBalance"`
}

type AddFavoriteRequest struct {
	Operator    string `json:"operator"`
	PhoneNumber string `json:"phoneNumber"`
	Label       string `json:"label"`
}

func (r AddFavoriteRequest) Validate() error {
	var errs []string

	if _, err := domain.ParseTelecomOperator(r.Operator); err != nil {
		errs = append(errs, "operator must be one of inwi, IAM, Orange")
	}
	if !commons.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, "phoneNumber must match 05/06/07 followed by 8 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type FavoriteResponse struct {
	ID          string `json:"id"`
	Operator    string `json:"operator"`
	PhoneNumber string `json:"phoneNumber"`
	Label       string `json:"label"`
	CreatedAt   string `json:"createdAt"`
}
