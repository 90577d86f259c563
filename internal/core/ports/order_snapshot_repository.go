package ports

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
)

// OrderSnapshotRepository is the persistence contract for the local order
// cache. Snapshots are written only from confirmed server responses; the
// cache never invents state the server has not acknowledged.
type OrderSnapshotRepository interface {
	// Upsert stores or refreshes the snapshot of an order.
	Upsert(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the cached snapshot of an order.
	// Returns an ObjectNotFoundError when the order was never cached.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllForEpicerie retrieves every cached order of an épicerie, newest
	// first.
	GetAllForEpicerie(ctx context.Context, epicerieID kernel.ID) ([]*order.Order, error)
}
