package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

// memoryUserRepo is an in-memory UserRepository. Reads return copies so a
// caller mutation without Save never leaks into the store, mirroring a real
// database round-trip.
type memoryUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) FindByRefreshToken(_ context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.RefreshToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	cp := *user
	cp.ID = "user-" + strconv.Itoa(r.seq)
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memoryUserRepo) Save(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) IncrementLoginAttempts(_ context.Context, id string) (int, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	u.LoginAttempts++
	return u.LoginAttempts, nil
}

func (r *memoryUserRepo) Lock(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsLocked = true
	return nil
}

// sentOTP records one notifier delivery.
type sentOTP struct {
	To      string
	Code    string
	Purpose ports.OTPPurpose
	Policy  ports.FailurePolicy
}

type stubNotifier struct {
	sent    []sentOTP
	failure error
}

func (n *stubNotifier) SendOTP(_ context.Context, to, code string, purpose ports.OTPPurpose, policy ports.FailurePolicy) error {
	n.sent = append(n.sent, sentOTP{To: to, Code: code, Purpose: purpose, Policy: policy})
	if n.failure != nil && policy == ports.Propagate {
		return n.failure
	}
	return nil
}

func (n *stubNotifier) last(t *testing.T) sentOTP {
	t.Helper()
	if len(n.sent) == 0 {
		t.Fatal("expected at least one OTP email")
	}
	return n.sent[len(n.sent)-1]
}

type stubCooldown struct {
	allow bool
	err   error
}

func (c *stubCooldown) Acquire(context.Context, string) (bool, error) {
	return c.allow, c.err
}

// fakeHasher uses a reversible marker instead of bcrypt so tests stay fast.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, digest string) bool  { return digest == "hashed:"+plaintext }

type fakeTokens struct {
	refreshSeq int
}

func (f *fakeTokens) IssueAccess(accountID string, kind domain.AccountKind) (string, error) {
	return "access-" + accountID + "-" + string(kind), nil
}

func (f *fakeTokens) VerifyAccess(string) (*ports.AccessClaims, error) {
	return nil, domain.ErrInvalidOrExpiredToken
}

func (f *fakeTokens) IssueRefresh() (string, error) {
	f.refreshSeq++
	return fmt.Sprintf("refresh-%d", f.refreshSeq), nil
}

type authFixture struct {
	repo     *memoryUserRepo
	notifier *stubNotifier
	cooldown *stubCooldown
	svc      *AuthService
}

func newAuthFixture() *authFixture {
	repo := newMemoryUserRepo()
	notifier := &stubNotifier{}
	cooldown := &stubCooldown{allow: true}
	svc := NewAuthService(repo, fakeHasher{}, &fakeTokens{}, notifier, cooldown, zerolog.Nop())
	return &authFixture{repo: repo, notifier: notifier, cooldown: cooldown, svc: svc}
}

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Firstname:   "Ada",
		Lastname:    "Diallo",
		Email:       "ada@example.com",
		Phone:       "+221770000001",
		DateOfBirth: "1992-04-15",
		Password:    "s3cret-pass",
		Kind:        "individual",
	}
}

func (f *authFixture) register(t *testing.T) *domain.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func (f *authFixture) registerVerified(t *testing.T) *domain.User {
	t.Helper()
	user := f.register(t)
	verified, err := f.svc.VerifyEmail(context.Background(), user.Email, f.notifier.last(t).Code)
	if err != nil {
		t.Fatalf("verify email: %v", err)
	}
	return verified
}

var otpPattern = regexp.MustCompile(`^\d{6}$`)

func TestRegister_CreatesUnverifiedAccountWithOTP(t *testing.T) {
	f := newAuthFixture()

	user := f.register(t)

	if user.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if user.EmailVerified {
		t.Fatal("new accounts must start unverified")
	}
	if user.Kind != domain.KindIndividual {
		t.Fatalf("unexpected kind %q", user.Kind)
	}
	if user.Company != nil {
		t.Fatal("individual accounts must not carry a company profile")
	}
	if user.Preferences != domain.DefaultPreferences() {
		t.Fatalf("unexpected default preferences: %+v", user.Preferences)
	}
	if !otpPattern.MatchString(user.OTPCode) {
		t.Fatalf("expected 6-digit OTP, got %q", user.OTPCode)
	}
	until := time.Until(user.OTPExpiresAt)
	if until < 9*time.Minute || until > 11*time.Minute {
		t.Fatalf("OTP expiry should be about 10 minutes out, got %v", until)
	}

	sent := f.notifier.last(t)
	if sent.To != "ada@example.com" || sent.Code != user.OTPCode {
		t.Fatalf("unexpected delivery: %+v", sent)
	}
	if sent.Purpose != ports.PurposeVerify || sent.Policy != ports.Ignore {
		t.Fatalf("registration emails must be best-effort verify: %+v", sent)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	f := newAuthFixture()

	in := validRegisterInput()
	in.Email = "  Ada@Example.COM "
	user, err := f.svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	in := validRegisterInput()
	in.Email = "ADA@EXAMPLE.COM"
	if _, err := f.svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_CompanyAccountCarriesProfile(t *testing.T) {
	f := newAuthFixture()

	in := validRegisterInput()
	in.Kind = "company"
	in.Company = &ports.CompanyInput{Name: "Nexora SARL", TaxID: "SN-123"}

	user, err := f.svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Company == nil || user.Company.Name != "Nexora SARL" || user.Company.TaxID != "SN-123" {
		t.Fatalf("unexpected company profile: %+v", user.Company)
	}
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	f := newAuthFixture()

	cases := map[string]func(*ports.RegisterInput){
		"bad kind":      func(in *ports.RegisterInput) { in.Kind = "robot" },
		"no firstname":  func(in *ports.RegisterInput) { in.Firstname = "" },
		"no email":      func(in *ports.RegisterInput) { in.Email = "" },
		"no password":   func(in *ports.RegisterInput) { in.Password = "" },
		"malformed dob": func(in *ports.RegisterInput) { in.DateOfBirth = "15/04/1992" },
	}
	for name, mutate := range cases {
		in := validRegisterInput()
		mutate(&in)
		if _, err := f.svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestRegister_SucceedsWhenEmailDeliveryFails(t *testing.T) {
	f := newAuthFixture()
	f.notifier.failure = errors.New("smtp down")

	if _, err := f.svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("registration must not depend on email delivery: %v", err)
	}
}

func TestVerifyEmail_Succeeds(t *testing.T) {
	f := newAuthFixture()
	user := f.register(t)

	verified, err := f.svc.VerifyEmail(context.Background(), user.Email, f.notifier.last(t).Code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !verified.EmailVerified {
		t.Fatal("account should be verified")
	}
	if verified.OTPCode != "" {
		t.Fatal("pending OTP must be cleared after verification")
	}
}

func TestVerifyEmail_CheckOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.svc.VerifyEmail(ctx, "ghost@example.com", "123456"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("already verified wins over code checks", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		if _, err := f.svc.VerifyEmail(ctx, user.Email, "000000"); !errors.Is(err, domain.ErrAlreadyVerified) {
			t.Fatalf("expected ErrAlreadyVerified, got %v", err)
		}
	})

	t.Run("no pending code", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		stored := f.repo.users[user.ID]
		stored.ClearOTP()
		if _, err := f.svc.VerifyEmail(ctx, user.Email, "123456"); !errors.Is(err, domain.ErrNoPendingCode) {
			t.Fatalf("expected ErrNoPendingCode, got %v", err)
		}
	})

	t.Run("mismatch wins over expiry", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		f.repo.users[user.ID].OTPExpiresAt = time.Now().Add(-time.Minute)
		if _, err := f.svc.VerifyEmail(ctx, user.Email, "999999"); !errors.Is(err, domain.ErrCodeMismatch) {
			t.Fatalf("expected ErrCodeMismatch, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		f.repo.users[user.ID].OTPExpiresAt = time.Now().Add(-time.Minute)
		if _, err := f.svc.VerifyEmail(ctx, user.Email, f.notifier.last(t).Code); !errors.Is(err, domain.ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})
}

func TestResendOTP_RotatesCodeAndPropagatesDelivery(t *testing.T) {
	f := newAuthFixture()
	user := f.register(t)
	firstCode := f.notifier.last(t).Code

	if err := f.svc.ResendOTP(context.Background(), user.Email); err != nil {
		t.Fatalf("resend: %v", err)
	}

	sent := f.notifier.last(t)
	if sent.Policy != ports.Propagate {
		t.Fatal("resend must deliver synchronously")
	}
	if sent.Code == firstCode {
		t.Fatal("resend must issue a fresh code")
	}
	if f.repo.users[user.ID].OTPCode != sent.Code {
		t.Fatal("stored OTP must match the emailed one")
	}
}

func TestResendOTP_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("already verified", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		if err := f.svc.ResendOTP(ctx, user.Email); !errors.Is(err, domain.ErrAlreadyVerified) {
			t.Fatalf("expected ErrAlreadyVerified, got %v", err)
		}
	})

	t.Run("delivery failure is surfaced", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		f.notifier.failure = errors.New("smtp down")
		if err := f.svc.ResendOTP(ctx, user.Email); !errors.Is(err, domain.ErrOTPSendFailed) {
			t.Fatalf("expected ErrOTPSendFailed, got %v", err)
		}
	})

	t.Run("cooldown active", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		f.cooldown.allow = false
		if err := f.svc.ResendOTP(ctx, user.Email); !errors.Is(err, domain.ErrOTPCooldown) {
			t.Fatalf("expected ErrOTPCooldown, got %v", err)
		}
	})

	t.Run("cooldown backend failure fails open", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		f.cooldown.allow = false
		f.cooldown.err = errors.New("redis down")
		if err := f.svc.ResendOTP(ctx, user.Email); err != nil {
			t.Fatalf("expected fail-open resend, got %v", err)
		}
	})
}

func TestLogin_Succeeds(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)

	result, err := f.svc.Login(context.Background(), "Ada@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", result.Tokens)
	}

	stored := f.repo.users[user.ID]
	if stored.RefreshToken != result.Tokens.RefreshToken {
		t.Fatal("refresh token must be persisted")
	}
	until := time.Until(stored.RefreshTokenExpiresAt)
	if until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Fatalf("refresh expiry should be about 7 days out, got %v", until)
	}
}

func TestLogin_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.svc.Login(ctx, "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unverified account", func(t *testing.T) {
		f := newAuthFixture()
		user := f.register(t)
		if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); !errors.Is(err, domain.ErrEmailNotVerified) {
			t.Fatalf("expected ErrEmailNotVerified, got %v", err)
		}
	})

	t.Run("locked account refuses even the right password", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		f.repo.users[user.ID].IsLocked = true
		if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); !errors.Is(err, domain.ErrAccountLocked) {
			t.Fatalf("expected ErrAccountLocked, got %v", err)
		}
	})
}

func TestLogin_FifthFailureLocksAccount(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	for i := 1; i < domain.MaxLoginAttempts; i++ {
		_, err := f.svc.Login(ctx, user.Email, "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	if _, err := f.svc.Login(ctx, user.Email, "wrong"); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("locking attempt: expected ErrAccountLocked, got %v", err)
	}
	if !f.repo.users[user.ID].IsLocked {
		t.Fatal("account should be locked in the store")
	}

	// The right password no longer helps.
	if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked after lockout, got %v", err)
	}
}

func TestLogin_SuccessResetsAttemptCounter(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = f.svc.Login(ctx, user.Email, "wrong")
	}
	if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := f.repo.users[user.ID].LoginAttempts; got != 0 {
		t.Fatalf("expected attempts reset to 0, got %d", got)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	f := newAuthFixture()
	f.registerVerified(t)
	ctx := context.Background()

	result, err := f.svc.Login(ctx, "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	old := result.Tokens.RefreshToken

	pair, err := f.svc.Refresh(ctx, old)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.RefreshToken == old {
		t.Fatal("refresh must rotate the token")
	}

	// The presented token is spent.
	if _, err := f.svc.Refresh(ctx, old); !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected spent token rejection, got %v", err)
	}
	// The new one works.
	if _, err := f.svc.Refresh(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("rotated token should be valid: %v", err)
	}
}

func TestRefresh_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.svc.Refresh(ctx, ""); !errors.Is(err, domain.ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.svc.Refresh(ctx, "refresh-unknown"); !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		result, err := f.svc.Login(ctx, user.Email, "s3cret-pass")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		f.repo.users[user.ID].RefreshTokenExpiresAt = time.Now().Add(-time.Hour)
		if _, err := f.svc.Refresh(ctx, result.Tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	if err := f.svc.ChangePassword(ctx, user.ID, "nope", "next-pass"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if err := f.svc.ChangePassword(ctx, user.ID, "s3cret-pass", "next-pass"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := f.svc.Login(ctx, user.Email, "next-pass"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
}

func TestForgotPassword_IsEnumerationSafe(t *testing.T) {
	f := newAuthFixture()
	if err := f.svc.ForgotPassword(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unknown addresses must not error: %v", err)
	}
	if len(f.notifier.sent) != 0 {
		t.Fatal("nothing should be emailed for unknown addresses")
	}
}

func TestForgotPassword_SetsResetCode(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)

	if err := f.svc.ForgotPassword(context.Background(), user.Email); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	sent := f.notifier.last(t)
	if sent.Purpose != ports.PurposeReset || sent.Policy != ports.Ignore {
		t.Fatalf("expected best-effort reset email, got %+v", sent)
	}

	stored := f.repo.users[user.ID]
	if stored.ResetOTP != sent.Code {
		t.Fatal("stored reset code must match the emailed one")
	}
	until := time.Until(stored.ResetOTPExpiresAt)
	if until < 14*time.Minute || until > 16*time.Minute {
		t.Fatalf("reset expiry should be about 15 minutes out, got %v", until)
	}
}

func TestForgotPassword_CooldownSuppressesResend(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	f.cooldown.allow = false

	emails := len(f.notifier.sent)
	if err := f.svc.ForgotPassword(context.Background(), user.Email); err != nil {
		t.Fatalf("cooldown must stay silent: %v", err)
	}
	if len(f.notifier.sent) != emails {
		t.Fatal("no email should go out during the cooldown window")
	}
}

func TestResetPassword_CheckOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		if err := f.svc.ResetPassword(ctx, "ghost@example.com", "123456", "new-pass"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("no pending reset", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		if err := f.svc.ResetPassword(ctx, user.Email, "123456", "new-pass"); !errors.Is(err, domain.ErrNoPendingReset) {
			t.Fatalf("expected ErrNoPendingReset, got %v", err)
		}
	})

	t.Run("mismatch wins over expiry", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		stored := f.repo.users[user.ID]
		stored.ResetOTP = "111111"
		stored.ResetOTPExpiresAt = time.Now().Add(-time.Minute)
		if err := f.svc.ResetPassword(ctx, user.Email, "222222", "new-pass"); !errors.Is(err, domain.ErrCodeMismatch) {
			t.Fatalf("expected ErrCodeMismatch, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newAuthFixture()
		user := f.registerVerified(t)
		stored := f.repo.users[user.ID]
		stored.ResetOTP = "111111"
		stored.ResetOTPExpiresAt = time.Now().Add(-time.Minute)
		if err := f.svc.ResetPassword(ctx, user.Email, "111111", "new-pass"); !errors.Is(err, domain.ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})
}

func TestResetPassword_SucceedsOnceOnly(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	if err := f.svc.ForgotPassword(ctx, user.Email); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	code := f.notifier.last(t).Code

	if err := f.svc.ResetPassword(ctx, user.Email, code, "brand-new"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := f.svc.Login(ctx, user.Email, "brand-new"); err != nil {
		t.Fatalf("login with reset password: %v", err)
	}

	// The code is consumed: replaying it is a no-pending-reset error.
	if err := f.svc.ResetPassword(ctx, user.Email, code, "again"); !errors.Is(err, domain.ErrNoPendingReset) {
		t.Fatalf("expected ErrNoPendingReset on replay, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	if err := f.svc.DeleteAccount(ctx, user.ID, "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if err := f.svc.DeleteAccount(ctx, user.ID, "s3cret-pass"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.repo.FindByID(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatal("account should be gone")
	}
}

func TestUnlockAccount(t *testing.T) {
	f := newAuthFixture()
	user := f.registerVerified(t)
	ctx := context.Background()

	for i := 0; i < domain.MaxLoginAttempts; i++ {
		_, _ = f.svc.Login(ctx, user.Email, "wrong")
	}
	if !f.repo.users[user.ID].IsLocked {
		t.Fatal("fixture should be locked")
	}

	if err := f.svc.UnlockAccount(ctx, user.Email); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := f.svc.Login(ctx, user.Email, "s3cret-pass"); err != nil {
		t.Fatalf("login after unlock: %v", err)
	}

	if err := f.svc.UnlockAccount(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
