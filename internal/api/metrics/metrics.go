// Package metrics defines all custom Prometheus metrics for the QFNexora
// finance API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// ── Account lifecycle metrics ─────────────────────────────────────────────────

// RegistrationsTotal counts accounts created, by account kind.
// Label:
//   - kind: "individual" or "company"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by account kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "locked", "unverified"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// LockoutsTotal counts accounts locked by the failed-login threshold.
var LockoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lockouts_total",
		Help:      "Total number of accounts locked after repeated failed logins.",
	},
)

// TokenRefreshesTotal counts refresh-token exchanges by outcome.
// Label:
//   - result: "success" or "rejected"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh token exchanges, by outcome.",
	},
	[]string{"result"},
)

// AccountsDeletedTotal counts permanent account deletions.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts permanently deleted.",
	},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// OTPEmailsTotal counts OTP email deliveries.
// Labels:
//   - purpose: "verify" or "reset"
//   - result:  "sent" or "error"
var OTPEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_emails_total",
		Help:      "Total number of OTP email deliveries, by purpose and result.",
	},
	[]string{"purpose", "result"},
)

// MailQueueDepth tracks the number of messages waiting in each mail worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of OTP emails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
