package commands_test

import (
	"errors"
	"testing"

	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestTransitionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	pending := testOrder(t, 7, 200, order.Pending, order.HomeDelivery)
	accepted := testOrder(t, 7, 200, order.Accepted, order.HomeDelivery)

	gateway := new(MockOrderGateway)
	snapshots := new(MockOrderSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Get", ctx, mustID(t, 7)).Return(pending, nil).Once(),
		gateway.On("UpdateStatus", ctx, mustID(t, 7), order.Accepted).Return(accepted, nil).Once(),
		snapshots.On("Upsert", ctx, accepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, inflight.NewGuard())
	confirmed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, confirmed.Status())
	gateway.AssertExpectations(t)
	snapshots.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestTransitionCommandHandler_Handle_IllegalTransitionMakesNoRequest(t *testing.T) {
	ctx := t.Context()
	// A livreur may not accept a pending order.
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleLivreur, order.Accepted)
	require.NoError(t, err)

	pending := testOrder(t, 7, 200, order.Pending, order.HomeDelivery)

	gateway := new(MockOrderGateway)
	snapshots := new(MockOrderSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Get", ctx, mustID(t, 7)).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, inflight.NewGuard())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	gateway.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestTransitionCommandHandler_Handle_SnapshotMissFallsBackToServer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	pending := testOrder(t, 7, 200, order.Pending, order.HomeDelivery)
	accepted := testOrder(t, 7, 200, order.Accepted, order.HomeDelivery)

	gateway := new(MockOrderGateway)
	snapshots := new(MockOrderSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Get", ctx, mustID(t, 7)).
			Return(nil, errs.NewObjectNotFoundError("orderID", 7)).Once(),
		gateway.On("Get", ctx, mustID(t, 7)).Return(pending, nil).Once(),
		gateway.On("UpdateStatus", ctx, mustID(t, 7), order.Accepted).Return(accepted, nil).Once(),
		snapshots.On("Upsert", ctx, accepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, inflight.NewGuard())
	confirmed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, confirmed.Status())
	gateway.AssertExpectations(t)
}

func TestRequestTransitionCommandHandler_Handle_ServerRejectionLeavesCacheAlone(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	pending := testOrder(t, 7, 200, order.Pending, order.HomeDelivery)
	rejection := errs.NewBusinessRejectionError("update order status", "order was cancelled meanwhile")

	gateway := new(MockOrderGateway)
	snapshots := new(MockOrderSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Get", ctx, mustID(t, 7)).Return(pending, nil).Once(),
		gateway.On("UpdateStatus", ctx, mustID(t, 7), order.Accepted).Return(nil, rejection).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, inflight.NewGuard())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, errs.KindBusiness, errs.KindOf(err))
	snapshots.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRequestTransitionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RequestTransitionCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewRequestTransitionCommandHandler(new(MockOrderGateway), factory, inflight.NewGuard())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRequestTransitionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRequestTransitionCommandHandler_Handle_SecondAttemptWhileInFlight(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 42), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	// A first request for order 42 is still waiting on the server.
	guard := inflight.NewGuard()
	require.True(t, guard.TryAcquire("order:42"))

	gateway := new(MockOrderGateway)
	factory := new(MockOrderUoWFactory)
	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, guard)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTransitionInFlight)
	assert.Equal(t, errs.KindBusiness, errs.KindOf(err))
	gateway.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestRequestTransitionCommandHandler_Handle_SharesKeyWithAssignment(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	guard := inflight.NewGuard()
	assignCmd, err := commands.NewAssignOrderCommand(mustID(t, 7), mustID(t, 200), mustID(t, 5))
	require.NoError(t, err)

	// An assignment holding order 7 blocks a transition for the same order.
	require.True(t, guard.TryAcquire("order:7"))

	transitionHandler := commands.NewRequestTransitionCommandHandler(
		new(MockOrderGateway), new(MockOrderUoWFactory), guard)
	_, err = transitionHandler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrTransitionInFlight)

	assignHandler := commands.NewAssignOrderCommandHandler(
		new(MockOrderGateway), new(MockLivreurGateway), new(MockOrderUoWFactory), guard)
	_, err = assignHandler.Handle(ctx, assignCmd)
	require.ErrorIs(t, err, commands.ErrAssignmentInFlight)
}

func TestRequestTransitionCommandHandler_Handle_GuardReleasedAfterFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	guard := inflight.NewGuard()

	pending := testOrder(t, 7, 200, order.Pending, order.HomeDelivery)
	rejection := errs.NewTransportError("update order status", assert.AnError)

	gateway := new(MockOrderGateway)
	snapshots := new(MockOrderSnapshotRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderSnapshotRepository").Return(snapshots)
	uow.On("Rollback", ctx).Return(nil)
	snapshots.On("Get", ctx, mustID(t, 7)).Return(pending, nil)
	gateway.On("UpdateStatus", ctx, mustID(t, 7), order.Accepted).Return(nil, rejection)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewRequestTransitionCommandHandler(gateway, factory, guard)
	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)

	assert.True(t, guard.TryAcquire("order:7"), "key must be released after a failed attempt")
}

func TestRequestTransitionCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestTransitionCommand(mustID(t, 7), kernel.RoleEpicier, order.Accepted)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewRequestTransitionCommandHandler(new(MockOrderGateway), factory, inflight.NewGuard())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
