package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/services"
)

func TestTelecomServiceAddFavorite(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewTelecomService(store)

	resp, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "Orange",
		PhoneNumber: "0612345678",
		Label:       "Maman",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Operator != "Orange" || resp.Data.Label != "Maman" {
		t.Fatalf("unexpected favorite data: %+v", *resp.Data)
	}

	session := getSession(t, store)
	if len(session.TelecomFavorites) != 1 {
		t.Fatalf("expected one favorite, got %d", len(session.TelecomFavorites))
	}
}

func TestTelecomServiceAddFavoriteLabelDefaultsToPhone(t *testing.T) {
	svc := services.NewTelecomService(newSeededStore(t))

	resp, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "inwi",
		PhoneNumber: "0698765432",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Label != "0698765432" {
		t.Fatalf("expected label to default to phone number, got %q", resp.Data.Label)
	}
}

func TestTelecomServiceDuplicatePhoneRefused(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewTelecomService(store)

	_, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "inwi",
		PhoneNumber: "0612345678",
	})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	resp, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "IAM",
		PhoneNumber: "0612345678",
		Label:       "Autre",
	})
	if !errors.Is(err, domain.ErrDuplicateFavorite) {
		t.Fatalf("expected duplicate favorite error, got %v", err)
	}
	if resp.Message != "Favorite already exists" {
		t.Fatalf("expected duplicate response, got %q", resp.Message)
	}

	session := getSession(t, store)
	if len(session.TelecomFavorites) != 1 {
		t.Fatalf("expected duplicate to leave the registry untouched, got %d entries", len(session.TelecomFavorites))
	}
}

func TestTelecomServiceAddFavoriteUnknownOperator(t *testing.T) {
	svc := services.NewTelecomService(newSeededStore(t))

	_, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "Vodafone",
		PhoneNumber: "0612345678",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown operator")
	}
}

func TestTelecomServiceRemoveFavorite(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewTelecomService(store)

	added, err := svc.AddFavorite(context.Background(), seededSessionID, models.AddFavoriteRequest{
		Operator:    "IAM",
		PhoneNumber: "0712345678",
	})
	if err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	resp, err := svc.RemoveFavorite(context.Background(), seededSessionID, added.Data.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.ID != added.Data.ID {
		t.Fatalf("expected removed favorite in response, got %q", resp.Data.ID)
	}

	list, err := svc.ListFavorites(context.Background(), seededSessionID)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(*list.Data) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(*list.Data))
	}
}

func TestTelecomServiceRemoveFavoriteNotFound(t *testing.T) {
	svc := services.NewTelecomService(newSeededStore(t))

	resp, err := svc.RemoveFavorite(context.Background(), seededSessionID, "missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found error, got %v", err)
	}
	if resp.Message != "Favorite not found" {
		t.Fatalf("expected favorite not found response, got %q", resp.Message)
	}
}
