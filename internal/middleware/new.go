package middleware

import (
	"trip-date-interpreter/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
}

func New(l log.Logger, allowedOrigins []string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
		limiter:        newRateLimiter(rateLimitPerMin),
	}
}
