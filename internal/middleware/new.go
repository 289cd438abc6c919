package middleware

import (
	"sccse-chatbot/pkg/log"
	"sccse-chatbot/pkg/metrics"
)

// Config holds the knobs of the shared middleware.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Metrics
	limiter        *rateLimiter
	allowedOrigins []string
}

// New builds the middleware set. A RateLimitPerMin of zero disables rate limiting.
func New(l log.Logger, m *metrics.Metrics, cfg Config) Middleware {
	return Middleware{
		l:              l,
		metrics:        m,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
