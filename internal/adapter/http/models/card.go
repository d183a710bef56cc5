package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

type CardStatusRequest struct {
	Active  *bool `json:"active"`
	Blocked *bool `json:"blocked"`
}

func (r CardStatusRequest) Validate() error {
	if r.Active == nil && r.Blocked == nil {
		return errors.New("at least one of active or blocked is required")
	}
	return nil
}

type CardLimitRequest struct {
	DailyLimit decimal.Decimal `json:"dailyLimit"`
}

type CardResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`
	Active         bool            `json:"active"`
	Blocked        bool            `json:"blocked"`
	DailyLimit     decimal.Decimal `json:"dailyLimit"`
	DailySpent     decimal.Decimal `json:"dailySpent"`
	RemainingToday decimal.Decimal `json:"remainingToday"`
}
