package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// All operations are atomic per record; no multi-document transactions.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRefreshToken(ctx context.Context, token string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error

	// IncrementLoginAttempts atomically bumps the failed-login counter and
	// returns the new value, so concurrent failures cannot under-count.
	IncrementLoginAttempts(ctx context.Context, id string) (int, error)
	// Lock marks the account as locked without touching other fields.
	Lock(ctx context.Context, id string) error
}
