package queries

import (
	"context"

	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
)

// GetMyOrdersQueryHandler retrieves the caller's order list, server-first
// with snapshot fallback for épicier callers.
type GetMyOrdersQueryHandler struct {
	orderGateway ports.OrderGateway
	snapshots    ports.OrderSnapshotRepository
}

// NewGetMyOrdersQueryHandler creates a handler for order list reads.
func NewGetMyOrdersQueryHandler(
	orderGateway ports.OrderGateway,
	snapshots ports.OrderSnapshotRepository,
) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{
		orderGateway: orderGateway,
		snapshots:    snapshots,
	}
}

// Handle executes the query.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) (*GetMyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fresh, err := h.orderGateway.ListMine(ctx, query.Status())
	if err == nil {
		return &GetMyOrdersQueryResponse{Orders: fresh, FromCache: false}, nil
	}
	if !errs.IsRetryable(err) || query.EpicerieID() == nil {
		return nil, err
	}

	cached, cacheErr := h.snapshots.GetAllForEpicerie(ctx, *query.EpicerieID())
	if cacheErr != nil {
		return nil, err
	}

	// The snapshot table holds every order, so the status filter is applied
	// here on the fallback path.
	if status := query.Status(); status != nil {
		filtered := make([]*order.Order, 0, len(cached))
		for _, o := range cached {
			if o.Status() == *status {
				filtered = append(filtered, o)
			}
		}
		cached = filtered
	}

	return &GetMyOrdersQueryResponse{Orders: cached, FromCache: true}, nil
}
