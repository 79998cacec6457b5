package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/api/metrics"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// OTPMessage is one queued email delivery.
type OTPMessage struct {
	To      string
	Code    string
	Purpose ports.OTPPurpose
}

// Dispatcher delivers queued OTP emails on a fixed set of workers sharded by
// recipient, so retries for one address never reorder behind another's.
// Delivery failures are logged and counted, never surfaced to the enqueuer.
type Dispatcher struct {
	workers []chan OTPMessage
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan OTPMessage, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan OTPMessage, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a message to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(msg OTPMessage) {
	i := d.shardIndex(msg.To)
	d.workers[i] <- msg
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan OTPMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			err := d.mailer.SendOTP(ctx, msg.To, msg.Code, msg.Purpose)
			metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err != nil {
				metrics.OTPEmailsTotal.WithLabelValues(string(msg.Purpose), "error").Inc()
				d.log.Error().Err(err).
					Str("recipient", msg.To).
					Str("purpose", string(msg.Purpose)).
					Int("worker_id", id).
					Msg("otp email delivery failed")
				continue
			}
			metrics.OTPEmailsTotal.WithLabelValues(string(msg.Purpose), "sent").Inc()
		}
	}
}
