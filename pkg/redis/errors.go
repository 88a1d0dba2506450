package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when REDIS_URL is unset.
	ErrEmptyConnectionURL = errors.New("redis: connection URL is empty")
	// ErrInvalidConnectionURL wraps the parser error for a malformed URL.
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")
	// ErrNotReady is returned when every connection attempt failed.
	ErrNotReady = errors.New("redis: server not ready")
	// ErrUnhealthy is returned by the readiness check.
	ErrUnhealthy = errors.New("redis: unhealthy")
)
