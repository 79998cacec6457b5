package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/api/metrics"
	"github.com/qfnexora/finance-api/internal/core/ports"
	"github.com/qfnexora/finance-api/internal/infrastructure/queue"
)

// Notifier routes OTP deliveries per the caller's failure policy: Ignore
// enqueues on the async dispatcher, Propagate sends inline and returns the
// transport error.
type Notifier struct {
	mailer     ports.Mailer
	dispatcher *queue.Dispatcher
	log        zerolog.Logger
}

func NewNotifier(mailer ports.Mailer, dispatcher *queue.Dispatcher, log zerolog.Logger) *Notifier {
	return &Notifier{mailer: mailer, dispatcher: dispatcher, log: log}
}

func (n *Notifier) SendOTP(ctx context.Context, to, code string, purpose ports.OTPPurpose, policy ports.FailurePolicy) error {
	if policy == ports.Propagate {
		if err := n.mailer.SendOTP(ctx, to, code, purpose); err != nil {
			metrics.OTPEmailsTotal.WithLabelValues(string(purpose), "error").Inc()
			return err
		}
		metrics.OTPEmailsTotal.WithLabelValues(string(purpose), "sent").Inc()
		return nil
	}

	n.dispatcher.Enqueue(queue.OTPMessage{To: to, Code: code, Purpose: purpose})
	return nil
}
