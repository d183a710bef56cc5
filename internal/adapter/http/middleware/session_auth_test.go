package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, sessionID string) string {
	t.Helper()

	now := time.Now().UTC()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newStoreWithSession(t *testing.T, sessionID string) *memory.SessionStore {
	t.Helper()

	store := memory.NewSessionStore()
	if _, err := store.Create(context.Background(), domain.Session{ID: sessionID}); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return store
}

func TestSessionAuth_AllowsValidToken(t *testing.T) {
	store := newStoreWithSession(t, "session-1")
	mw := SessionAuth(testSecret, store)

	var seenSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "session-1"))

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if seenSessionID != "session-1" {
		t.Fatalf("expected session id in context, got %q", seenSessionID)
	}
}

func TestSessionAuth_RejectsMissingHeader(t *testing.T) {
	mw := SessionAuth(testSecret, newStoreWithSession(t, "session-1"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestSessionAuth_RejectsWrongSecret(t *testing.T) {
	mw := SessionAuth(testSecret, newStoreWithSession(t, "session-1"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "session-1"))

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestSessionAuth_RejectsDeletedSession(t *testing.T) {
	store := newStoreWithSession(t, "session-1")
	if err := store.Delete(context.Background(), "session-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	mw := SessionAuth(testSecret, store)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "session-1"))

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
