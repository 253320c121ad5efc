package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT arrives and the server has drained.
	RunServer()

	// Run serves until ctx is cancelled or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
