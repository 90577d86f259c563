package commands_test

import (
	"testing"

	"epicerie/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignLivreurCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUnassignLivreurCommand(mustID(t, 200), mustID(t, 5), true)
	require.NoError(t, err)

	assigned := testPool(t, 6)
	unassigned := testPool(t, 5, 9)

	gateway := new(MockLivreurGateway)
	poolRepo := new(MockLivreurSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		gateway.On("UnassignFromEpicerie", ctx, mustID(t, 200), mustID(t, 5)).Return(nil).Once(),
		gateway.On("ListAssigned", ctx, mustID(t, 200)).Return(assigned, nil).Once(),
		gateway.On("ListUnassigned", ctx).Return(unassigned, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LivreurSnapshotRepository").Return(poolRepo).Once(),
		poolRepo.On("ReplacePool", ctx, mustID(t, 200), assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLivreurUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignLivreurCommandHandler(gateway, factory)
	listings, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, listings.Assigned, 1)
	assert.Len(t, listings.Unassigned, 2)
	gateway.AssertExpectations(t)
}

func TestUnassignLivreurCommandHandler_Handle_NotConfirmed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUnassignLivreurCommand(mustID(t, 200), mustID(t, 5), false)
	require.NoError(t, err)

	gateway := new(MockLivreurGateway)
	handler := commands.NewUnassignLivreurCommandHandler(gateway, new(MockLivreurUoWFactory))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUnassignNotConfirmed)
	gateway.AssertNotCalled(t, "UnassignFromEpicerie", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnassignLivreurCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UnassignLivreurCommand{} // not constructed properly

	handler := commands.NewUnassignLivreurCommandHandler(new(MockLivreurGateway), new(MockLivreurUoWFactory))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUnassignLivreurCommandIsNotConstructed)
}
