package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/services"
)

func TestBeneficiaryServiceAddNormalizesIBAN(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewBeneficiaryService(store)

	resp, err := svc.AddBeneficiary(context.Background(), seededSessionID, models.AddBeneficiaryRequest{
		Name:     "Karim Idrissi",
		BankName: "CIH Bank",
		IBAN:     "MA64 1234 5678 9012 3456 7890 12",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.IBAN != "MA641234567890123456789012" {
		t.Fatalf("expected whitespace-stripped IBAN, got %q", resp.Data.IBAN)
	}
	if resp.Data.Blocked {
		t.Fatal("expected new beneficiary to start unblocked")
	}

	session := getSession(t, store)
	if len(session.Beneficiaries) != 3 {
		t.Fatalf("expected three beneficiaries, got %d", len(session.Beneficiaries))
	}
}

func TestBeneficiaryServiceAddRejectsForeignIBAN(t *testing.T) {
	svc := services.NewBeneficiaryService(newSeededStore(t))

	_, err := svc.AddBeneficiary(context.Background(), seededSessionID, models.AddBeneficiaryRequest{
		Name:     "Pierre Martin",
		BankName: "BNP Paribas",
		IBAN:     "FR7612345678901234567890123",
	})
	if err == nil {
		t.Fatal("expected validation error for non-MA IBAN")
	}
}

func TestBeneficiaryServiceListReturnsAll(t *testing.T) {
	svc := services.NewBeneficiaryService(newSeededStore(t))

	resp, err := svc.ListBeneficiaries(context.Background(), seededSessionID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(*resp.Data) != 2 {
		t.Fatalf("expected two seeded beneficiaries, got %d", len(*resp.Data))
	}
}

func TestBeneficiaryServiceSetBlocked(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewBeneficiaryService(store)

	resp, err := svc.SetBeneficiaryBlocked(context.Background(), seededSessionID, seededBeneficiaryID, true)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Data.Blocked {
		t.Fatal("expected beneficiary to be blocked")
	}

	session := getSession(t, store)
	if !session.Beneficiaries[0].Blocked {
		t.Fatal("expected blocked flag persisted in session")
	}
}

func TestBeneficiaryServiceRemove(t *testing.T) {
	store := newSeededStore(t)
	svc := services.NewBeneficiaryService(store)

	resp, err := svc.RemoveBeneficiary(context.Background(), seededSessionID, seededBeneficiaryID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.ID != seededBeneficiaryID {
		t.Fatalf("expected removed beneficiary in response, got %q", resp.Data.ID)
	}

	session := getSession(t, store)
	if len(session.Beneficiaries) != 1 {
		t.Fatalf("expected one beneficiary left, got %d", len(session.Beneficiaries))
	}
}

func TestBeneficiaryServiceNotFound(t *testing.T) {
	svc := services.NewBeneficiaryService(newSeededStore(t))

	resp, err := svc.RemoveBeneficiary(context.Background(), seededSessionID, "missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found error, got %v", err)
	}
	if resp.Message != "Beneficiary not found" {
		t.Fatalf("expected beneficiary not found response, got %q", resp.Message)
	}
}

func TestBeneficiaryServiceUnknownSession(t *testing.T) {
	svc := services.NewBeneficiaryService(memory.NewSessionStore())

	resp, err := svc.ListBeneficiaries(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found error, got %v", err)
	}
	if resp.Message != "Session not found" {
		t.Fatalf("expected session not found response, got %q", resp.Message)
	}
}
