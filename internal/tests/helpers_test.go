package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

const (
	seededSessionID          = "session-1"
	seededBeneficiaryID      = "beneficiary-1"
	seededBlockedBeneficiary = "beneficiary-2"
)

// newSeededStore returns a store holding one session with the demo opening
// balances, an active card with a 5000 daily limit, one usable beneficiary
// and one blocked beneficiary.
func newSeededStore(t *testing.T) *memory.SessionStore {
	t.Helper()

	store := memory.NewSessionStore()
	now := time.Now().UTC()

	_, err := store.Create(context.Background(), domain.Session{
		ID: seededSessionID,
		User: domain.User{
			ID:        "user-1",
			Email:     "ahmed.benali@example.com",
			FirstName: "Ahmed",
			LastName:  "Benali",
			CreatedAt: now,
		},
		Account: domain.Account{
			AccountNumber:        "0123456789",
			SavingsAccountNumber: "9876543210",
			RIB:                  "230800100000012345678942",
			SavingsRIB:           "230800100000987654321042",
			CheckingBalance:      decimal.RequireFromString("15420.50"),
			SavingsBalance:       decimal.RequireFromString("8500.00"),
		},
		Card: &domain.Card{
			ID:         "card-1",
			Number:     "4532 **** **** 8790",
			Type:       domain.CardTypeVirtual,
			Active:     true,
			Blocked:    false,
			DailyLimit: decimal.NewFromInt(5000),
			DailySpent: decimal.Zero,
			CreatedAt:  now,
		},
		Beneficiaries: []domain.Beneficiary{
			{
				ID:       seededBeneficiaryID,
				Name:     "Youssef El Amrani",
				BankName: "Attijariwafa Bank",
				IBAN:     "MA641234567890123456789012",
				Blocked:  false,
				AddedAt:  now,
			},
			{
				ID:       seededBlockedBeneficiary,
				Name:     "Fatima Zahra",
				BankName: "BMCE Bank",
				IBAN:     "MA640987654321098765432109",
				Blocked:  true,
				AddedAt:  now,
			},
		},
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	return store
}

func getSession(t *testing.T, store *memory.SessionStore) domain.Session {
	t.Helper()

	session, err := store.Get(context.Background(), seededSessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	return session
}
