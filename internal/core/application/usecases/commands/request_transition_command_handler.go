package commands

import (
	"context"
	"errors"

	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/inflight"
)

// ErrTransitionInFlight is returned when a status change for the same order
// is already waiting on the server. Rapid repeated taps must not produce
// duplicate requests.
var ErrTransitionInFlight = errs.NewBusinessRejectionError(
	"request order transition", "a status change for this order is already in flight")

// RequestTransitionCommandHandler orchestrates role-gated status changes.
//
// The handler checks the transition against the local snapshot first, so an
// illegal (status, role, target) triple is rejected before any request leaves
// the process. Only a server-confirmed response is written back to the cache.
// A per-order in-flight guard rejects concurrent attempts for the same order.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(orderGateway, uowFactory, guard)
//	confirmed, err := handler.Handle(ctx, cmd)
//	if errs.KindOf(err) == errs.KindBusiness {
//	    // the server (or the local table) refused the transition
//	}
type RequestTransitionCommandHandler struct {
	orderGateway  ports.OrderGateway
	uowFactory    OrderUoWFactory
	inflightGuard *inflight.Guard
}

// NewRequestTransitionCommandHandler creates a handler for status change
// requests. The in-flight guard must be shared with the assignment handlers:
// both keys live in the same per-order namespace, so a transition and an
// assignment for the same order never race each other.
func NewRequestTransitionCommandHandler(
	orderGateway ports.OrderGateway,
	uowFactory OrderUoWFactory,
	inflightGuard *inflight.Guard,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		orderGateway:  orderGateway,
		uowFactory:    uowFactory,
		inflightGuard: inflightGuard,
	}
}

// Handle processes the transition request.
//
// The current order comes from the snapshot cache when available, falling
// back to a server fetch for orders never seen before. After local
// validation, the server confirms the transition and the confirmed state is
// upserted into the cache within a transaction.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	command RequestTransitionCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	key := inflightKey(command.OrderID())
	if !h.inflightGuard.TryAcquire(key) {
		return nil, ErrTransitionInFlight
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

	// Local gate: no round trip for a transition the table forbids.
	if _, err = current.Status().TransitionTo(
		command.Role(), current.DeliveryType(), command.Target(),
	); err != nil {
		return nil, err
	}

	confirmed, err := h.orderGateway.UpdateStatus(ctx, command.OrderID(), command.Target())
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
