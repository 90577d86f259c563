package queries

import (
	"context"

	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
)

// ListUnassignedLivreursQueryHandler retrieves the unassigned driver list.
// There is no cache for unassigned drivers; the list changes too often for a
// stale copy to be useful.
type ListUnassignedLivreursQueryHandler struct {
	livreurGateway ports.LivreurGateway
}

// NewListUnassignedLivreursQueryHandler creates a handler for unassigned list
// reads.
func NewListUnassignedLivreursQueryHandler(livreurGateway ports.LivreurGateway) ListUnassignedLivreursQueryHandler {
	return ListUnassignedLivreursQueryHandler{livreurGateway: livreurGateway}
}

// Handle executes the query.
func (h ListUnassignedLivreursQueryHandler) Handle(
	ctx context.Context,
	query ListUnassignedLivreursQuery,
) (*ListLivreursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	livreurs, err := h.livreurGateway.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	return &ListLivreursQueryResponse{Livreurs: livreurs, FromCache: false}, nil
}

// ListAssignedLivreursQueryHandler retrieves an épicerie's pool, server-first
// with snapshot fallback on transport failures.
type ListAssignedLivreursQueryHandler struct {
	livreurGateway ports.LivreurGateway
	snapshots      ports.LivreurSnapshotRepository
}

// NewListAssignedLivreursQueryHandler creates a handler for pool reads.
func NewListAssignedLivreursQueryHandler(
	livreurGateway ports.LivreurGateway,
	snapshots ports.LivreurSnapshotRepository,
) ListAssignedLivreursQueryHandler {
	return ListAssignedLivreursQueryHandler{
		livreurGateway: livreurGateway,
		snapshots:      snapshots,
	}
}

// Handle executes the query.
func (h ListAssignedLivreursQueryHandler) Handle(
	ctx context.Context,
	query ListAssignedLivreursQuery,
) (*ListLivreursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fresh, err := h.livreurGateway.ListAssigned(ctx, query.EpicerieID())
	if err == nil {
		return &ListLivreursQueryResponse{Livreurs: fresh, FromCache: false}, nil
	}
	if !errs.IsRetryable(err) {
		return nil, err
	}

	cached, cacheErr := h.snapshots.GetPool(ctx, query.EpicerieID())
	if cacheErr != nil {
		return nil, err
	}

	return &ListLivreursQueryResponse{Livreurs: cached, FromCache: true}, nil
}
