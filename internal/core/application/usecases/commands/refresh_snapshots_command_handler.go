package commands

import (
	"context"

	"epicerie/internal/core/ports"
)

// RefreshSnapshotsCommandHandler rewrites the snapshot cache for one épicerie
// from fresh server responses. All writes happen in a single transaction so
// readers never observe a half-refreshed cache.
type RefreshSnapshotsCommandHandler struct {
	orderGateway   ports.OrderGateway
	livreurGateway ports.LivreurGateway
	uowFactory     UoWFactory
}

// NewRefreshSnapshotsCommandHandler creates a handler for cache refresh
// operations.
func NewRefreshSnapshotsCommandHandler(
	orderGateway ports.OrderGateway,
	livreurGateway ports.LivreurGateway,
	uowFactory UoWFactory,
) RefreshSnapshotsCommandHandler {
	return RefreshSnapshotsCommandHandler{
		orderGateway:   orderGateway,
		livreurGateway: livreurGateway,
		uowFactory:     uowFactory,
	}
}

// Handle processes the refresh command. Transport failures leave the cache
// untouched; the next scheduled run retries.
func (h RefreshSnapshotsCommandHandler) Handle(ctx context.Context, command RefreshSnapshotsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	// The cache holds every order, so the refresh never narrows by status.
	orders, err := h.orderGateway.ListMine(ctx, nil)
	if err != nil {
		return err
	}

	pool, err := h.livreurGateway.ListAssigned(ctx, command.EpicerieID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderSnapshots := uow.OrderSnapshotRepository()
	for _, o := range orders {
		if err = orderSnapshots.Upsert(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.LivreurSnapshotRepository().ReplacePool(ctx, command.EpicerieID(), pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
