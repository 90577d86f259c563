package commands

import (
	"context"
	"errors"
	"fmt"

	"epicerie/internal/core/domain/model/epicerie"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/core/domain/services"
	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/inflight"
)

// ErrAssignmentInFlight is returned when an assignment for the same order is
// already waiting on the server. Rapid repeated taps must not produce
// duplicate requests.
var ErrAssignmentInFlight = errs.NewBusinessRejectionError(
	"assign livreur to order", "an assignment for this order is already in flight")

// AssignOrderCommandHandler orchestrates handing an order to a livreur.
//
// Preconditions are checked locally before the round trip: the order must be
// READY and HOME_DELIVERY, and the livreur must be in the owning épicerie's
// pool as currently reported by the server. A per-order in-flight guard
// rejects concurrent attempts for the same order.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(orderGateway, livreurGateway, uowFactory, guard)
//	confirmed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrLivreurNotInPool) {
//	    // the chosen driver belongs to another épicerie
//	}
type AssignOrderCommandHandler struct {
	orderGateway   ports.OrderGateway
	livreurGateway ports.LivreurGateway
	uowFactory     OrderUoWFactory
	inflightGuard  *inflight.Guard
}

// NewAssignOrderCommandHandler creates a handler for order assignment
// operations. The in-flight guard must be shared across handlers serving the
// same process, otherwise concurrent requests slip through.
func NewAssignOrderCommandHandler(
	orderGateway ports.OrderGateway,
	livreurGateway ports.LivreurGateway,
	uowFactory OrderUoWFactory,
	inflightGuard *inflight.Guard,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		orderGateway:   orderGateway,
		livreurGateway: livreurGateway,
		uowFactory:     uowFactory,
		inflightGuard:  inflightGuard,
	}
}

// Handle processes the assignment command and returns the confirmed order.
func (h AssignOrderCommandHandler) Handle(
	ctx context.Context,
	command AssignOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	key := inflightKey(command.OrderID())
	if !h.inflightGuard.TryAcquire(key) {
		return nil, ErrAssignmentInFlight
	}
	defer h.inflightGuard.Release(key)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	snapshots := uow.OrderSnapshotRepository()

	current, err := snapshots.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		current, err = h.orderGateway.Get(ctx, command.OrderID())
	}
	if err != nil {
		return nil, err
	}

	pool, err := h.livreurGateway.ListAssigned(ctx, command.EpicerieID())
	if err != nil {
		return nil, err
	}

	poolProjection, err := epicerie.RestorePoolProjection(command.EpicerieID(), pool)
	if err != nil {
		return nil, err
	}

	identity, err := livreur.ConfirmedIdentity(command.LivreurID())
	if err != nil {
		return nil, err
	}

	if err = services.NewLivreurAssigner().Validate(current, poolProjection, identity); err != nil {
		return nil, err
	}

	confirmed, err := h.livreurGateway.AssignOrder(ctx, command.OrderID(), command.LivreurID())
	if err != nil {
		return nil, err
	}

	if err = snapshots.Upsert(ctx, confirmed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return confirmed, nil
}

func inflightKey(orderID kernel.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}
