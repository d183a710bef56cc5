package models

import (
	"errors"
	"strings"

	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r RegisterRequest) Validate() error {
	var errs []string

	if !commons.IsValidDisplayName(r.FirstName) {
		errs = append(errs, "firstName must be 2-50 letters, spaces or hyphens")
	}
	if !commons.IsValidDisplayName(r.LastName) {
		errs = append(errs, "lastName must be 2-50 letters, spaces or hyphens")
	}
	if !commons.IsValidEmail(r.Email) {
		errs = append(errs, "email format is invalid")
	}
	if !commons.IsValidPassword(r.Password) {
		errs = append(errs, "password must be at least 8 characters with one lowercase, one uppercase and one digit")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if !commons.IsValidEmail(r.Email) {
		errs = append(errs, "email format is invalid")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UserResponse struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	AccountNumber        string `json:"accountNumber"`
	SavingsAccountNumber string `json:"savingsAccountNumber"`
	RIB                  string `json:"rib"`
	SavingsRIB           string `json:"savingsRib"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type LogoutResponse struct {
	SessionID string `json:"sessionId"`
}
