// Package delivery defines the transport-agnostic serving interface.
package delivery

import "context"

// Delivery is a server started by the application runner. Implementations
// join the fx "deliveries" group and block inside Serve.
type Delivery interface {
	Serve(ctx context.Context) error
}
