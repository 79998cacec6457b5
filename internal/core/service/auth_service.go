package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/api/metrics"
	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

const (
	otpTTL      = 10 * time.Minute
	resetOTPTTL = 15 * time.Minute
	refreshTTL  = 7 * 24 * time.Hour
)

// AuthService implements the full account lifecycle on top of the user
// repository, credential hasher, token issuer and OTP notifier.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	notifier ports.Notifier
	cooldown ports.Cooldown
	log      zerolog.Logger
}

// NewAuthService wires the auth orchestration. cooldown may be nil, in which
// case OTP resends are not rate limited.
func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	notifier ports.Notifier,
	cooldown ports.Cooldown,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		cooldown: cooldown,
		log:      log,
	}
}

// Register creates an unverified account and best-effort sends the
// verification OTP. Delivery failure never fails the registration; the
// resend endpoint is the recovery path.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	kind := domain.AccountKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Firstname == "" || in.Lastname == "" || in.Email == "" ||
		in.Phone == "" || in.DateOfBirth == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	email := normalizeEmail(in.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	otp, err := generateOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Firstname:     in.Firstname,
		Lastname:      in.Lastname,
		Email:         email,
		Phone:         in.Phone,
		DateOfBirth:   dob,
		Kind:          kind,
		Preferences:   domain.DefaultPreferences(),
		PasswordHash:  hash,
		EmailVerified: false,
		OTPCode:       otp,
		OTPExpiresAt:  now.Add(otpTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if kind == domain.KindCompany {
		user.Company = companyProfile(in.Company)
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	// Best effort: a lost email is recoverable via resend-otp.
	_ = s.notifier.SendOTP(ctx, email, otp, ports.PurposeVerify, ports.Ignore)

	metrics.RegistrationsTotal.WithLabelValues(string(kind)).Inc()
	s.log.Info().Str("email", email).Str("kind", string(kind)).Msg("account registered")
	return created, nil
}

// VerifyEmail confirms the account with the pending OTP. Check order:
// existence, already-verified, pending code, mismatch, expiry.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return nil, domain.ErrAlreadyVerified
	}
	if user.OTPCode == "" {
		return nil, domain.ErrNoPendingCode
	}
	if user.OTPCode != code {
		return nil, domain.ErrCodeMismatch
	}
	if time.Now().UTC().After(user.OTPExpiresAt) {
		return nil, domain.ErrCodeExpired
	}

	user.EmailVerified = true
	user.ClearOTP()
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("email verified")
	return user, nil
}

// ResendOTP issues a fresh verification code. Unlike registration, delivery
// failure is surfaced here: the caller explicitly asked for an email.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	if !s.acquireCooldown(ctx, "otp:"+email) {
		return domain.ErrOTPCooldown
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	user.OTPCode = otp
	user.OTPExpiresAt = time.Now().UTC().Add(otpTTL)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.notifier.SendOTP(ctx, email, otp, ports.PurposeVerify, ports.Propagate); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("resend otp delivery failed")
		return domain.ErrOTPSendFailed
	}
	return nil
}

// Login authenticates the account, enforcing verification and lockout. Five
// consecutive failures lock the account; a successful login resets the
// counter and rotates the refresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a wrong password, to block enumeration.
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsLocked {
		metrics.LoginsTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrAccountLocked
	}
	if !user.EmailVerified {
		metrics.LoginsTotal.WithLabelValues("unverified").Inc()
		return nil, domain.ErrEmailNotVerified
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, s.recordFailedAttempt(ctx, user)
	}

	refresh, err := s.tokens.IssueRefresh()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.LoginAttempts = 0
	user.IsLocked = false
	user.RefreshToken = refresh
	user.RefreshTokenExpiresAt = now.Add(refreshTTL)
	user.UpdatedAt = now
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccess(user.ID, user.Kind)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return &ports.LoginResult{
		User:   user,
		Tokens: ports.TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// recordFailedAttempt bumps the attempt counter atomically and locks the
// account when the threshold is reached. The attempt that trips the lock
// reports AccountLocked; earlier ones report InvalidCredentials.
func (s *AuthService) recordFailedAttempt(ctx context.Context, user *domain.User) error {
	attempts, err := s.repo.IncrementLoginAttempts(ctx, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("failed-login counter update failed")
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return domain.ErrInvalidCredentials
	}

	if attempts >= domain.MaxLoginAttempts {
		if err := s.repo.Lock(ctx, user.ID); err != nil {
			s.log.Error().Err(err).Str("email", user.Email).Msg("account lock failed")
		}
		metrics.LoginsTotal.WithLabelValues("locked").Inc()
		metrics.LockoutsTotal.Inc()
		s.log.Warn().Str("email", user.Email).Int("attempts", attempts).Msg("account locked")
		return domain.ErrAccountLocked
	}

	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	return domain.ErrInvalidCredentials
}

// Refresh exchanges a valid refresh token for a new token pair. The stored
// token is overwritten, so the presented one can never be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrMissingToken
	}

	user, err := s.repo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidOrExpiredToken
		}
		return nil, err
	}
	if time.Now().UTC().After(user.RefreshTokenExpiresAt) {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidOrExpiredToken
	}

	next, err := s.tokens.IssueRefresh()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.RefreshToken = next
	user.RefreshTokenExpiresAt = now.Add(refreshTTL)
	user.UpdatedAt = now
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccess(user.ID, user.Kind)
	if err != nil {
		return nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return &ports.TokenPair{AccessToken: access, RefreshToken: next}, nil
}

// ChangePassword replaces the password after confirming the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, user)
}

// ForgotPassword starts a password reset. The outcome is identical whether
// or not the address has an account, to block enumeration.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if !s.acquireCooldown(ctx, "reset:"+email) {
		return nil
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	user.ResetOTP = otp
	user.ResetOTPExpiresAt = time.Now().UTC().Add(resetOTPTTL)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	_ = s.notifier.SendOTP(ctx, email, otp, ports.PurposeReset, ports.Ignore)
	return nil
}

// ResetPassword sets a new password against a pending reset code. Check
// order: existence, pending reset, mismatch, expiry.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.ResetOTP == "" {
		return domain.ErrNoPendingReset
	}
	if user.ResetOTP != code {
		return domain.ErrCodeMismatch
	}
	if time.Now().UTC().After(user.ResetOTPExpiresAt) {
		return domain.ErrCodeExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ClearResetOTP()
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("password reset")
	return nil
}

// DeleteAccount permanently removes the account after password confirmation.
// There is no soft delete and no recovery.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	metrics.AccountsDeletedTotal.Inc()
	s.log.Info().Str("email", user.Email).Msg("account deleted")
	return nil
}

// UnlockAccount is the administrative recovery path for locked accounts.
func (s *AuthService) UnlockAccount(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	user.LoginAttempts = 0
	user.IsLocked = false
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("account unlocked")
	return nil
}

func (s *AuthService) acquireCooldown(ctx context.Context, key string) bool {
	if s.cooldown == nil {
		return true
	}
	ok, err := s.cooldown.Acquire(ctx, key)
	if err != nil {
		// A broken rate limiter must not take the auth flow down with it.
		s.log.Warn().Err(err).Str("key", key).Msg("otp cooldown unavailable, failing open")
		return true
	}
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOTP returns a 6-digit decimal code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("otp entropy: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func companyProfile(in *ports.CompanyInput) *domain.CompanyProfile {
	if in == nil {
		return &domain.CompanyProfile{}
	}
	return &domain.CompanyProfile{
		Name:        in.Name,
		Website:     in.Website,
		Address:     in.Address,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		TaxID:       in.TaxID,
	}
}
