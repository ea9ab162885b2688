// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pharmacy_pos"

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Login attempts partitioned by outcome.",
	}, []string{"outcome"})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Accounts created through the register endpoint.",
	})

	TokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Refresh token exchanges partitioned by outcome.",
	}, []string{"outcome"})

	ResourceWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Successful writes partitioned by resource and operation.",
	}, []string{"resource", "operation"})
)

const (
	OutcomeSuccess            = "success"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)
