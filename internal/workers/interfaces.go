// Package workers runs the background jobs of the blocklist service.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the shared context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails; a cancelled context is not an error.
type Worker interface {
	Run(ctx context.Context) error
}
