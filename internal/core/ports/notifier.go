package ports

import "context"

// OTPPurpose selects the message template and validity window of an OTP email.
type OTPPurpose string

const (
	PurposeVerify OTPPurpose = "verify"
	PurposeReset  OTPPurpose = "reset"
)

// FailurePolicy states what a delivery failure does to the calling operation.
type FailurePolicy int

const (
	// Ignore queues the message for asynchronous delivery; failures are
	// logged and counted but never reach the caller.
	Ignore FailurePolicy = iota
	// Propagate delivers synchronously and returns the transport error.
	Propagate
)

// Mailer is the raw outbound email transport for one-time-passcode messages.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string, purpose OTPPurpose) error
}

// Notifier delivers OTP emails under an explicit per-call failure policy,
// so each call site states whether delivery is best-effort or required.
type Notifier interface {
	SendOTP(ctx context.Context, to, code string, purpose OTPPurpose, policy FailurePolicy) error
}

// Cooldown rate-limits repeated OTP sends per address. Acquire reports
// whether the caller may send now; an unavailable backend fails open.
type Cooldown interface {
	Acquire(ctx context.Context, key string) (bool, error)
}
