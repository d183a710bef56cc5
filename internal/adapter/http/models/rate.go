package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

type RateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
}

type ConversionQuoteRequest struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Amount       decimal.Decimal `json:"amount"`
}

func (r ConversionQuoteRequest) Validate() error {
	var errs []string

	if _, err := domain.ParseCurrency(r.FromCurrency); err != nil {
		errs = append(errs, "fromCurrency must be one of MAD, EUR, USD")
	}
	if _, err := domain.ParseCurrency(r.ToCurrency); err != nil {
		errs = append(errs, "toCurrency must be one of MAD, EUR, USD")
	}
	if !commons.IsValidAmount(r.Amount) {
		errs = append(errs, "amount must be positive with at most 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ConversionQuoteResponse struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
}

// ConfirmConversionRequest carries the same fields as the quote step; the
// engine re-quotes at confirm time so the two phases stay consistent.
type ConfirmConversionRequest = ConversionQuoteRequest

type ConversionResponse struct {
	TransactionID   string          `json:"transactionId"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
	CheckingBalance decimal.Decimal `json:"checkingBalance"`
}
