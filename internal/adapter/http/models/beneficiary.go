package models

import (
	"errors"
	"strings"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type AddBeneficiaryRequest struct {
	Name     string `json:"name"`
	BankName string `json:"bankName"`
	IBAN     string `json:"iban"`
}

func (r AddBeneficiaryRequest) Validate() error {
	var errs []string

	if !commons.IsValidDisplayName(r.Name) {
		errs = append(errs, "name must be 2-50 letters, spaces or hyphens")
	}
	if strings.TrimSpace(r.BankName) == "" {
		errs = append(errs, "bankName is required")
	}
	if !commons.IsValidIBAN(r.IBAN) {
		errs = append(errs, "iban must match MA followed by 2 digits and 20-30 alphanumeric characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SetBeneficiaryBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

type BeneficiaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BankName string `json:"bankName"`
	IBAN     string `json:"iban"`
	Blocked  bool   `json:"blocked"`
	AddedAt  string `json:"addedAt"`
}
