package ports

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
)

// OrderGateway is the outbound contract to the marketplace server for order
// operations. Implementations carry the caller's bearer token from the
// context, so the server applies its own role checks on top of the local ones.
//
// Error contract: request construction and validation problems surface as
// validation errors, server-side rejections as business errors, and network or
// 5xx failures as transport errors.
type OrderGateway interface {
	// Get retrieves the current server state of a single order.
	Get(ctx context.Context, orderID kernel.ID) (*order.Order, error)

	// UpdateStatus asks the server to move an order to the target status and
	// returns the confirmed order state. Implementations never apply the
	// change locally before the server confirms it.
	UpdateStatus(ctx context.Context, orderID kernel.ID, target order.Status) (*order.Order, error)

	// ListMine retrieves the orders visible to the authenticated caller. The
	// server scopes the list by the caller's role. A non-nil status narrows
	// the list to orders currently in that status; nil lists everything.
	ListMine(ctx context.Context, status *order.Status) ([]*order.Order, error)
}
