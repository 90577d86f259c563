package commands_test

import (
	"context"
	"testing"
	"time"

	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Get(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) UpdateStatus(
	ctx context.Context,
	orderID kernel.ID,
	target order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) ListMine(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLivreurGateway struct{ mock.Mock }

func (m *MockLivreurGateway) ListUnassigned(ctx context.Context) ([]*livreur.Livreur, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurGateway) ListAssigned(ctx context.Context, epicerieID kernel.ID) ([]*livreur.Livreur, error) {
	args := m.Called(ctx, epicerieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurGateway) AssignToEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error {
	args := m.Called(ctx, epicerieID, livreurID)
	return args.Error(0)
}

func (m *MockLivreurGateway) UnassignFromEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error {
	args := m.Called(ctx, epicerieID, livreurID)
	return args.Error(0)
}

func (m *MockLivreurGateway) AssignOrder(ctx context.Context, orderID, livreurID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, orderID, livreurID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderSnapshotRepository struct{ mock.Mock }

func (m *MockOrderSnapshotRepository) Upsert(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderSnapshotRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderSnapshotRepository) GetAllForEpicerie(
	ctx context.Context,
	epicerieID kernel.ID,
) ([]*order.Order, error) {
	args := m.Called(ctx, epicerieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLivreurSnapshotRepository struct{ mock.Mock }

func (m *MockLivreurSnapshotRepository) ReplacePool(
	ctx context.Context,
	epicerieID kernel.ID,
	members []*livreur.Livreur,
) error {
	args := m.Called(ctx, epicerieID, members)
	return args.Error(0)
}

func (m *MockLivreurSnapshotRepository) GetPool(
	ctx context.Context,
	epicerieID kernel.ID,
) ([]*livreur.Livreur, error) {
	args := m.Called(ctx, epicerieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*livreur.Livreur), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderSnapshotRepository() ports.OrderSnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderSnapshotRepository)
}

func (m *MockUoW) LivreurSnapshotRepository() ports.LivreurSnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.LivreurSnapshotRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLivreurUoWFactory struct{ mock.Mock }

func (m *MockLivreurUoWFactory) Create() commands.LivreurUoW {
	args := m.Called()
	return args.Get(0).(commands.LivreurUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func testOrder(t *testing.T, id, epicerieID int64, status order.Status, deliveryType order.DeliveryType) *order.Order {
	t.Helper()
	item, err := order.NewItem(mustID(t, 10), decimal.NewFromInt(2), decimal.RequireFromString("3.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		mustID(t, id), mustID(t, 100), mustID(t, epicerieID),
		status, deliveryType,
		decimal.RequireFromString("6.00"),
		"12 rue des Oliviers", "+212600000000",
		nil,
		[]*order.Item{item},
		time.Now().Add(-time.Hour), time.Now(),
	)
	require.NoError(t, err)
	return o
}

func testPool(t *testing.T, livreurIDs ...int64) []*livreur.Livreur {
	t.Helper()
	pool := make([]*livreur.Livreur, 0, len(livreurIDs))
	for _, id := range livreurIDs {
		identity, err := livreur.ConfirmedIdentity(mustID(t, id))
		require.NoError(t, err)
		l, err := livreur.NewLivreur(identity, "Livreur", "", true, nil)
		require.NoError(t, err)
		pool = append(pool, l)
	}
	return pool
}
