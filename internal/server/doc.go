// Package server runs the HTTP and gRPC transports of the blocklist service
// and shuts them down gracefully when the run context is cancelled.
package server
