package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL mirrors the 24-hour expiry the token store enforces on its own
// records. Resolution must also check it defensively against rows the store
// has not purged yet.
const SessionTTL = 24 * time.Hour

// Session is identified by its token string. At most one session is valid
// per user at any time.
type Session struct {
	Token     string    `json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.CreatedAt.Add(SessionTTL))
}
