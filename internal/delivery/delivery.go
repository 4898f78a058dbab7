// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface started by the composition
// root and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
