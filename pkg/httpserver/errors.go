package httpserver

import "errors"

var (
	// ErrStart indicates that the listener could not be started or failed while serving.
	ErrStart = errors.New("http server failed to start")
	// ErrShutdown indicates that in-flight requests did not drain before the deadline.
	ErrShutdown = errors.New("http server did not shut down gracefully")
)
