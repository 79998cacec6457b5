package domain

import "time"

// AccountKind distinguishes personal accounts from business accounts.
type AccountKind string

const (
	KindIndividual AccountKind = "individual"
	KindCompany    AccountKind = "company"
)

// Valid reports whether k is one of the supported account kinds.
func (k AccountKind) Valid() bool {
	return k == KindIndividual || k == KindCompany
}

// CompanyProfile carries the business-only fields. It is nil on individual
// accounts, so an individual account can never carry stray company data.
type CompanyProfile struct {
	Name        string `json:"name,omitempty"`
	Website     string `json:"website,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
}

// Preferences holds the per-user display settings edited on the settings screen.
type Preferences struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// DefaultPreferences returns the preferences applied to a new account.
func DefaultPreferences() Preferences {
	return Preferences{Currency: "USD", Language: "en", Theme: "light"}
}

// MaxLoginAttempts is the number of consecutive failed logins that locks an
// account. A locked account refuses login until an administrator unlocks it.
const MaxLoginAttempts = 5

// User is the central account entity. Credential and verification state never
// serializes to JSON, so responses are sanitized by construction.
type User struct {
	ID           string          `json:"id"`
	Firstname    string          `json:"firstname"`
	Lastname     string          `json:"lastname"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	DateOfBirth  time.Time       `json:"date_of_birth"`
	Kind         AccountKind     `json:"user_type"`
	Company      *CompanyProfile `json:"company,omitempty"`
	Preferences  Preferences     `json:"preferences"`
	PasswordHash string          `json:"-"`

	EmailVerified bool      `json:"email_verified"`
	OTPCode       string    `json:"-"`
	OTPExpiresAt  time.Time `json:"-"`

	ResetOTP          string    `json:"-"`
	ResetOTPExpiresAt time.Time `json:"-"`

	LoginAttempts int  `json:"-"`
	IsLocked      bool `json:"-"`

	RefreshToken          string    `json:"-"`
	RefreshTokenExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClearOTP removes the pending email-verification code.
func (u *User) ClearOTP() {
	u.OTPCode = ""
	u.OTPExpiresAt = time.Time{}
}

// ClearResetOTP removes the pending password-reset code.
func (u *User) ClearResetOTP() {
	u.ResetOTP = ""
	u.ResetOTPExpiresAt = time.Time{}
}
