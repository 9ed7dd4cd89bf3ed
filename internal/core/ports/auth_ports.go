package ports

import (
	"context"
	"time"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

// SessionRepository owns token records. GetByToken must not return rows past
// their TTL even if they have not been purged yet.
type SessionRepository interface {
	Store(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, cutoff time.Time) error
}

type AuthService interface {
	// Login verifies credentials and issues a fresh token, invalidating any
	// previous session of the same user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Verify resolves a bearer token back to the owning user's public fields.
	Verify(ctx context.Context, token string) (*domain.User, error)

	// Logout revokes the session. Revoking an unknown or already-expired
	// token is not an error.
	Logout(ctx context.Context, token string) error
}
