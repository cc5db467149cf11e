package commands_test

import (
	"testing"

	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCatalogLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.PricingReview)

	cmd, err := commands.NewAddCatalogLineItemCommand(
		aggregate.ID(), kernel.NewUUID(),
		"Forklift with operator", lineitem.CategoryEquipment, lineitem.Billable,
		decimal.NewFromInt(2), "day", testMoney(t, "420.00"),
		map[string]string{"serviceTypeId": "svc-forklift"},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogLineItemCommandHandler(factory, reviewPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Len(t, aggregate.LineItems(), 1)
	require.Equal(t, "840.00", aggregate.LineItems()[0].LineTotal().String())
}

func TestAddCatalogLineItemCommandHandler_Handle_InvalidQuantity(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAddCatalogLineItemCommand(
		orderID, kernel.NewUUID(),
		"Forklift with operator", lineitem.CategoryEquipment, lineitem.Billable,
		decimal.Zero, "day", testMoney(t, "420.00"), nil,
	)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewAddCatalogLineItemCommandHandler(factory, reviewPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidQuantity)
	factory.AssertNotCalled(t, "Create")
}

func TestAddCatalogLineItemCommandHandler_Handle_OrderLocked(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.InTransit)

	cmd, err := commands.NewAddCatalogLineItemCommand(
		aggregate.ID(), kernel.NewUUID(),
		"Forklift with operator", lineitem.CategoryEquipment, lineitem.Billable,
		decimal.NewFromInt(1), "day", testMoney(t, "420.00"), nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogLineItemCommandHandler(factory, reviewPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrOrderLocked)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveLineItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should remove a catalog item", func(t *testing.T) {
		aggregate := orderInStatus(t, order.PricingReview)
		item, err := lineitem.NewLineItem(
			kernel.NewUUID(), "Forklift with operator", lineitem.CategoryEquipment,
			lineitem.Billable, decimal.NewFromInt(1), "day", testMoney(t, "420.00"), nil,
		)
		require.NoError(t, err)
		require.NoError(t, aggregate.AddLineItem(item, reviewPolicy()))

		cmd, err := commands.NewRemoveLineItemCommand(aggregate.ID(), item.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
			repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveLineItemCommandHandler(factory, reviewPolicy())
		require.NoError(t, h.Handle(ctx, cmd))
		require.Empty(t, aggregate.LineItems())
	})

	t.Run("should keep reskin-linked items", func(t *testing.T) {
		aggregate := orderInStatus(t, order.PricingReview)
		item, err := lineitem.NewReskinLineItem(kernel.NewUUID(), "Rebrand kiosk", testMoney(t, "180.00"), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, aggregate.AttachReskinLineItem(item))

		cmd, err := commands.NewRemoveLineItemCommand(aggregate.ID(), item.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveLineItemCommandHandler(factory, reviewPolicy())
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrLinkedRecordExists)
		require.Len(t, aggregate.LineItems(), 1)
	})
}
