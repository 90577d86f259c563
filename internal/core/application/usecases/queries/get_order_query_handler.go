package queries

import (
	"context"

	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order, server-first.
//
// Transport failures fall back to the snapshot cache so the app stays usable
// offline; business rejections and validation errors never fall back, the
// server's answer is authoritative for those.
type GetOrderQueryHandler struct {
	orderGateway ports.OrderGateway
	snapshots    ports.OrderSnapshotRepository
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(
	orderGateway ports.OrderGateway,
	snapshots ports.OrderSnapshotRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderGateway: orderGateway,
		snapshots:    snapshots,
	}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fresh, err := h.orderGateway.Get(ctx, query.OrderID())
	if err == nil {
		return &GetOrderQueryResponse{Order: fresh, FromCache: false}, nil
	}
	if !errs.IsRetryable(err) {
		return nil, err
	}

	cached, cacheErr := h.snapshots.Get(ctx, query.OrderID())
	if cacheErr != nil {
		// Nothing cached either; the transport failure is the real story.
		return nil, err
	}

	return &GetOrderQueryResponse{Order: cached, FromCache: true}, nil
}
