package server

import "context"

// Server is the lifecycle contract of the transports managed by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns the first serve or shutdown error.
	RunServer(ctx context.Context) error
}
