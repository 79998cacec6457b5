package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// CompanyInput carries the optional business fields accepted at registration.
type CompanyInput struct {
	Name        string
	Website     string
	Address     string
	Description string
	LogoURL     string
	TaxID       string
}

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Firstname   string
	Lastname    string
	Email       string
	Phone       string
	DateOfBirth string
	Password    string
	Kind        string
	Company     *CompanyInput
}

// TokenPair holds a freshly issued access token and its rotated refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService orchestrates the full account lifecycle: registration with
// email verification, login with lockout, token refresh with rotation,
// password recovery and account deletion.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, email, code string) (*domain.User, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	DeleteAccount(ctx context.Context, userID, password string) error
	UnlockAccount(ctx context.Context, email string) error
}
