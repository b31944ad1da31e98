package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AuthRequests counts identity resolution outcomes per request.
	// Outcomes: anonymous, authenticated, invalid_token, unknown_subject.
	AuthRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Identity resolution outcomes of the authentication middleware",
		},
		[]string{"outcome"},
	)

	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(AuthRequests, RLRequests, RLBlocked)
}
