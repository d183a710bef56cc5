package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/services"
)

const testSessionSecret = "test-session-secret"

func newAuthService(store *memory.SessionStore) *services.AuthService {
	return services.NewAuthService(
		store,
		testSessionSecret,
		time.Hour,
		"230",
		"80010",
		decimal.NewFromInt(5000),
		decimal.RequireFromString("15420.50"),
		decimal.RequireFromString("8500.00"),
	)
}

func sessionIDFromToken(t *testing.T, tokenString string) string {
	t.Helper()

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(testSessionSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		t.Fatal("expected sid claim in token")
	}
	return sessionID
}

func TestAuthServiceLoginSeedsDemoProfile(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(store)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "demo@atlasbank.ma",
		Password: "Demo1234",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.Token == "" {
		t.Fatal("expected successful response with token")
	}
	if resp.Data.User.FirstName != "Ahmed" || resp.Data.User.LastName != "Benali" {
		t.Fatalf("expected demo profile, got %s %s", resp.Data.User.FirstName, resp.Data.User.LastName)
	}
	if len(resp.Data.User.AccountNumber) != 10 {
		t.Fatalf("expected 10-digit account number, got %q", resp.Data.User.AccountNumber)
	}
	if len(resp.Data.User.RIB) != 24 {
		t.Fatalf("expected 24-character RIB, got %q", resp.Data.User.RIB)
	}

	sessionID := sessionIDFromToken(t, resp.Data.Token)
	session, err := store.Get(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("expected session in store, got %v", err)
	}
	if !session.Account.CheckingBalance.Equal(decimal.RequireFromString("15420.50")) {
		t.Fatalf("expected seeded checking balance, got %s", session.Account.CheckingBalance.String())
	}
	if !session.Account.SavingsBalance.Equal(decimal.RequireFromString("8500.00")) {
		t.Fatalf("expected seeded savings balance, got %s", session.Account.SavingsBalance.String())
	}
	if session.Card == nil || !session.Card.Active || session.Card.Blocked {
		t.Fatal("expected an active unblocked card")
	}
	if !session.Card.DailyLimit.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected default daily limit 5000, got %s", session.Card.DailyLimit.String())
	}
}

func TestAuthServiceRegisterOpensEmptyAccounts(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(store)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		FirstName: "Sara",
		LastName:  "Alaoui",
		Email:     "sara.alaoui@example.com",
		Password:  "Str0ngPass",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.User.FirstName != "Sara" {
		t.Fatalf("expected registered profile, got %s", resp.Data.User.FirstName)
	}

	sessionID := sessionIDFromToken(t, resp.Data.Token)
	session, err := store.Get(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("expected session in store, got %v", err)
	}
	if !session.Account.CheckingBalance.Equal(decimal.Zero) || !session.Account.SavingsBalance.Equal(decimal.Zero) {
		t.Fatal("expected zero opening balances for registration")
	}
	if session.User.PasswordHash == "" || session.User.PasswordHash == "Str0ngPass" {
		t.Fatal("expected hashed password on the user record")
	}
}

func TestAuthServiceLogoutDestroysSession(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(store)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "demo@atlasbank.ma",
		Password: "Demo1234",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sessionID := sessionIDFromToken(t, resp.Data.Token)

	logoutResp, err := svc.Logout(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !logoutResp.Success {
		t.Fatal("expected successful logout response")
	}

	if _, err := store.Get(context.Background(), sessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone after logout, got %v", err)
	}
}

func TestAuthServiceLogoutUnknownSession(t *testing.T) {
	svc := newAuthService(memory.NewSessionStore())

	resp, err := svc.Logout(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found error, got %v", err)
	}
	if resp.Message != "Session not found" {
		t.Fatalf("expected session not found response, got %q", resp.Message)
	}
}

func TestAuthServiceLoginValidationError(t *testing.T) {
	svc := newAuthService(memory.NewSessionStore())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "not-an-email",
		Password: "Demo1234",
	})
	if err == nil {
		t.Fatal("expected validation error for malformed email")
	}
}

func TestAuthServiceRegisterWeakPassword(t *testing.T) {
	svc := newAuthService(memory.NewSessionStore())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		FirstName: "Sara",
		LastName:  "Alaoui",
		Email:     "sara.alaoui@example.com",
		Password:  "weakpass",
	})
	if err == nil {
		t.Fatal("expected validation error for password without uppercase and digit")
	}
}
