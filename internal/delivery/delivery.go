// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}
