// Package delivery defines the contract every transport (HTTP, worker, ...)
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server owned by the fx application.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
