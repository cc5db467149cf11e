package commands_test

import (
	"context"
	"time"

	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/reskin"
	"rentops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) GetAllInvoicedUnpaid(_ context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) GetAllWithPickupBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type MockLineItemRequestRepository struct{ mock.Mock }

func (m *MockLineItemRequestRepository) Add(ctx context.Context, r *lineitem.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLineItemRequestRepository) Update(ctx context.Context, r *lineitem.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLineItemRequestRepository) Get(ctx context.Context, id kernel.UUID) (*lineitem.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lineitem.Request), args.Error(1)
}

func (m *MockLineItemRequestRepository) GetAllRequested(_ context.Context, _ kernel.UUID) ([]*lineitem.Request, error) {
	return nil, nil
}

type MockReskinRequestRepository struct{ mock.Mock }

func (m *MockReskinRequestRepository) Add(ctx context.Context, r *reskin.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReskinRequestRepository) Update(ctx context.Context, r *reskin.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReskinRequestRepository) Get(ctx context.Context, id kernel.UUID) (*reskin.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reskin.Request), args.Error(1)
}

func (m *MockReskinRequestRepository) GetAllPending(_ context.Context, _ kernel.UUID) ([]*reskin.Request, error) {
	return nil, nil
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLineItemRequestUoW struct{ MockOrderUoW }

func (m *MockLineItemRequestUoW) LineItemRequestRepository() ports.LineItemRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRequestRepository)
}

type MockLineItemRequestUoWFactory struct{ mock.Mock }

func (m *MockLineItemRequestUoWFactory) Create() commands.LineItemRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.LineItemRequestUoW)
}

type MockReskinRequestUoW struct{ MockOrderUoW }

func (m *MockReskinRequestUoW) ReskinRequestRepository() ports.ReskinRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ReskinRequestRepository)
}

type MockReskinRequestUoWFactory struct{ mock.Mock }

func (m *MockReskinRequestUoWFactory) Create() commands.ReskinRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ReskinRequestUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, event string, orderID kernel.UUID) error {
	args := m.Called(ctx, event, orderID)
	return args.Error(0)
}

type MockAssetCatalog struct{ mock.Mock }

func (m *MockAssetCatalog) MarkTransformed(ctx context.Context, assetID kernel.UUID, newAssetName string) error {
	args := m.Called(ctx, assetID, newAssetName)
	return args.Error(0)
}

type stubPermissions struct{ allow bool }

func (s stubPermissions) CanPerform(string, string) bool { return s.allow }
