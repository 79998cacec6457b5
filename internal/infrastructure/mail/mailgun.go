package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v5"

	"github.com/qfnexora/finance-api/internal/core/ports"
)

// sendTimeout bounds every outbound delivery so a slow mail provider can
// never hang a request.
const sendTimeout = 5 * time.Second

// validity windows communicated in the message body. They mirror the OTP
// expiries set by the auth service.
var validity = map[ports.OTPPurpose]time.Duration{
	ports.PurposeVerify: 10 * time.Minute,
	ports.PurposeReset:  15 * time.Minute,
}

// Config captures the Mailgun account settings.
type Config struct {
	APIKey string
	Domain string
	Sender string
}

// MailgunMailer delivers OTP emails through the Mailgun API.
type MailgunMailer struct {
	client *mailgun.Client
	domain string
	sender string
}

// NewMailgunMailer returns a mailer for the configured Mailgun domain.
func NewMailgunMailer(cfg Config) *MailgunMailer {
	return &MailgunMailer{
		client: mailgun.NewMailgun(cfg.APIKey),
		domain: cfg.Domain,
		sender: cfg.Sender,
	}
}

// SendOTP delivers the templated one-time-passcode message for purpose.
func (m *MailgunMailer) SendOTP(ctx context.Context, to, code string, purpose ports.OTPPurpose) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	subject, intro := template(purpose)
	window := int(validity[purpose].Minutes())

	text := fmt.Sprintf("%s\n\nYour verification code is: %s\nThis code is valid for %d minutes.", intro, code, window)
	msg := mailgun.NewMessage(m.domain, m.sender, subject, text, to)
	msg.SetHTML(htmlBody(intro, code, window))

	if _, err := m.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}

func template(purpose ports.OTPPurpose) (subject, intro string) {
	switch purpose {
	case ports.PurposeReset:
		return "Your password reset code - QFNexora",
			"We received a request to reset your QFNexora password."
	default:
		return "Your verification code - QFNexora",
			"Thanks for signing up with QFNexora. Enter the code below to verify your email address."
	}
}

func htmlBody(intro, code string, window int) string {
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto">
  <h2 style="color:#1a237e">QFNexora</h2>
  <p>%s</p>
  <div style="text-align:center;margin:24px 0">
    <span style="display:inline-block;background:#e3e7fd;color:#1a237e;font-size:2rem;font-weight:bold;letter-spacing:8px;padding:16px 28px;border-radius:8px">%s</span>
  </div>
  <p>This code is valid for <b>%d minutes</b>. If you did not request it, you can ignore this email.</p>
</div>`, intro, code, window)
}
