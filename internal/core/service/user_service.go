package service

import (
	"context"
	"time"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

// UserService exposes the authenticated user's profile and settings.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateSettings applies the provided preference fields, leaving empty ones
// untouched.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, in ports.SettingsInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Currency != "" {
		user.Preferences.Currency = in.Currency
	}
	if in.Language != "" {
		if in.Language != "en" && in.Language != "fr" {
			return nil, domain.ErrInvalidInput
		}
		user.Preferences.Language = in.Language
	}
	if in.Theme != "" {
		if in.Theme != "light" && in.Theme != "dark" {
			return nil, domain.ErrInvalidInput
		}
		user.Preferences.Theme = in.Theme
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
