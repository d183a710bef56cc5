package repo_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

// SessionStore owns all per-session mutable state. Get returns a deep copy;
// Update runs fn against the live state under the session's lock, which is
// what serializes ledger operations per account.
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) (domain.Session, error)
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	Update(ctx context.Context, sessionID string, fn func(session *domain.Session) error) error
	Delete(ctx context.Context, sessionID string) error
}
