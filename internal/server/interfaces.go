package server

import "context"

// Server defines the lifecycle contract of the control API server.
type Server interface {
	// RunServer serves requests until ctx is done, then shuts down
	// gracefully. It returns an error only when the listener fails.
	RunServer(ctx context.Context) error

	// Run is RunServer with the error logged, so the server can be run as
	// a background worker.
	Run(ctx context.Context)
}
