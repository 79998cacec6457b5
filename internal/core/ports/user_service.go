package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// SettingsInput carries the editable display preferences. Empty fields keep
// their current value.
type SettingsInput struct {
	Currency string
	Language string
	Theme    string
}

// UserService exposes the authenticated user's profile and settings.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID string, in SettingsInput) (*domain.User, error)
}
