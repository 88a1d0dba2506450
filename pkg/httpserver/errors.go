package httpserver

import "errors"

var (
	// ErrStart is joined with the listener or serve error.
	ErrStart = errors.New("httpserver: start failed")
	// ErrAlreadyRunning is joined with ErrStart when Run or Serve is called twice.
	ErrAlreadyRunning = errors.New("httpserver: already running")
	// ErrShutdown is returned when connections did not drain within the shutdown timeout.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
