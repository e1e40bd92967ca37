package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// the listener fails. On cancellation the server is shut down gracefully.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
