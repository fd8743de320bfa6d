package server

import "time"

const (
	readTimeout = 10 * time.Second
	// The upstream can take most of its own 10s budget before answering, so
	// the write timeout leaves headroom on top of the upstream timeout.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
