package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
)

// UserRepository looks up admin accounts. Emails are stored lowercase and
// compared case-insensitively; Create is only reached from the seeder.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
