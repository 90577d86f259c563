package ports

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
)

// LivreurGateway is the outbound contract to the marketplace server for
// driver pool operations. The server owns the unassigned/assigned partition;
// implementations never mutate local state before a confirmed response.
//
// List responses are defensively normalized: a missing, null or malformed
// collection becomes an empty slice, and entries without a usable id come
// back with fallback or synthesized identities instead of being dropped.
type LivreurGateway interface {
	// ListUnassigned retrieves every livreur not currently in any pool.
	ListUnassigned(ctx context.Context) ([]*livreur.Livreur, error)

	// ListAssigned retrieves the pool of the given épicerie.
	ListAssigned(ctx context.Context, epicerieID kernel.ID) ([]*livreur.Livreur, error)

	// AssignToEpicerie asks the server to move a livreur into the épicerie's
	// pool.
	AssignToEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error

	// UnassignFromEpicerie asks the server to release a livreur back to the
	// unassigned pool.
	UnassignFromEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error

	// AssignOrder asks the server to hand a ready home-delivery order to a
	// livreur from the owning épicerie's pool, and returns the confirmed
	// order state.
	AssignOrder(ctx context.Context, orderID, livreurID kernel.ID) (*order.Order, error)
}
