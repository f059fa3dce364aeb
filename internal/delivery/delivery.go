// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport endpoint (an HTTP server, for
// instance). Serve blocks until the endpoint stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
