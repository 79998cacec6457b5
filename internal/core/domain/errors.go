package domain

import "errors"

// Authentication and account lifecycle errors. The HTTP layer maps each of
// these to a deterministic status code; anything else surfaces as a 500.
var (
	ErrInvalidInput          = errors.New("missing or invalid fields")
	ErrEmailTaken            = errors.New("email already in use")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountLocked         = errors.New("account locked after too many failed attempts")
	ErrEmailNotVerified      = errors.New("email address not verified")
	ErrAlreadyVerified       = errors.New("email already verified")
	ErrNoPendingCode         = errors.New("no verification code pending")
	ErrNoPendingReset        = errors.New("no password reset pending")
	ErrCodeMismatch          = errors.New("verification code does not match")
	ErrCodeExpired           = errors.New("verification code expired")
	ErrWrongPassword         = errors.New("wrong password")
	ErrMissingToken          = errors.New("refresh token required")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrOTPSendFailed         = errors.New("could not send verification email")
	ErrOTPCooldown           = errors.New("verification email recently sent, retry later")
)

// Finance resource errors.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrSavingPlanNotFound  = errors.New("saving plan not found")
	ErrPlanNotEditable     = errors.New("saving plan is no longer editable")
	ErrDepositExceedsGoal  = errors.New("deposit would exceed the target amount")
	ErrImmutableSource     = errors.New("only manual transactions can be modified")
)
