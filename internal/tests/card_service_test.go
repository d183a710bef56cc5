package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/services"
)

func TestCardServiceGetCard(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewCardService(store)

	resp, err := svc.GetCard(context.Background(), seededSessionID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if !resp.Data.RemainingToday.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected remaining 5000, got %s", resp.Data.RemainingToday.String())
	}
	if resp.Data.Type != string(domain.CardTypeVirtual) {
		t.Fatalf("expected virtual card, got %s", resp.Data.Type)
	}
}

func TestCardServiceSetBlockedThenUnblocked(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewCardService(store)

	resp, err := svc.SetCardBlocked(context.Background(), seededSessionID, true)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Data.Blocked {
		t.Fatal("expected card to be blocked")
	}

	resp, err = svc.SetCardBlocked(context.Background(), seededSessionID, false)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Blocked {
		t.Fatal("expected card to be unblocked")
	}
}

func TestCardServiceSetDailyLimitBounds(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewCardService(store)

	for _, limit := range []int64{99, 50001} {
		_, err := svc.SetCardDailyLimit(context.Background(), seededSessionID, decimal.NewFromInt(limit))
		if !errors.Is(err, domain.ErrLimitOutOfRange) {
			t.Fatalf("expected limit %d to be rejected, got %v", limit, err)
		}
	}

	session := getSession(t, store)
	if !session.Card.DailyLimit.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected limit untouched after rejections, got %s", session.Card.DailyLimit.String())
	}

	for _, limit := range []int64{100, 50000} {
		resp, err := svc.SetCardDailyLimit(context.Background(), seededSessionID, decimal.NewFromInt(limit))
		if err != nil {
			t.Fatalf("expected limit %d to be accepted, got %v", limit, err)
		}
		if !resp.Data.DailyLimit.Equal(decimal.NewFromInt(limit)) {
			t.Fatalf("expected limit %d, got %s", limit, resp.Data.DailyLimit.String())
		}
	}
}

func TestCardServiceRemainingTodayClampsAtZero(t *testing.T) {
	store := newSeededStore(t)
	err := store.Update(context.Background(), seededSessionID, func(session *domain.Session) error {
		session.Card.DailySpent = decimal.NewFromInt(6000)
		return nil
	})
	if err != nil {
		t.Fatalf("seed daily spent: %v", err)
	}

	svc := services.NewCardService(store)
	resp, err := svc.GetCard(context.Background(), seededSessionID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Data.RemainingToday.Equal(decimal.Zero) {
		t.Fatalf("expected remaining clamped to zero, got %s", resp.Data.RemainingToday.String())
	}
}

func TestCardServiceMissingCard(t *testing.T) {
	store := newSeededStore(t)
	err := store.Update(context.Background(), seededSessionID, func(session *domain.Session) error {
		session.Card = nil
		return nil
	})
	if err != nil {
		t.Fatalf("drop card: %v", err)
	}

	svc := services.NewCardService(store)
	resp, err := svc.GetCard(context.Background(), seededSessionID)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found error, got %v", err)
	}
	if resp.Message != "Card not found" {
		t.Fatalf("expected card not found response, got %q", resp.Message)
	}
}

func TestCardServiceUnknownSession(t *testing.T) {
	svc := services.NewCardService(memory.NewSessionStore())

	resp, err := svc.SetCardActive(context.Background(), "missing", true)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found error, got %v", err)
	}
	if resp.Message != "Session not found" {
		t.Fatalf("expected session not found response, got %q", resp.Message)
	}
}
