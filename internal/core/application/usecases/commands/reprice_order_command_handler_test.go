package commands_test

import (
	"context"
	"testing"

	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/core/domain/services"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedBaseRates struct{ rate kernel.Money }

func (c fixedBaseRates) LookupBaseRate(_ context.Context, _, _ string, _ kernel.Volume) (kernel.Money, error) {
	return c.rate, nil
}

type fixedTransportRates struct {
	rate kernel.Money
	err  error
}

func (c fixedTransportRates) LookupTransportRate(
	_ context.Context, _ *kernel.UUID, _, _ string, _ pricing.TripType, _ string,
) (kernel.Money, error) {
	return c.rate, c.err
}

func testVolume(t *testing.T, value string) kernel.Volume {
	t.Helper()
	v, err := kernel.NewVolumeFromString(value)
	require.NoError(t, err)
	return v
}

func testTransportSpec() services.TransportSpec {
	return services.TransportSpec{
		Country:     "AE",
		City:        "dubai",
		Area:        "marina",
		TripType:    pricing.RoundTrip,
		VehicleType: "box-truck",
	}
}

func TestRepriceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.PricingReview)

	cmd, err := commands.NewRepriceOrderCommand(
		aggregate.ID(), testVolume(t, "10.000"), testTransportSpec(), decimal.NewFromInt(25),
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

	svc := services.NewPricingService(
		fixedBaseRates{rate: testMoney(t, "100.00")},
		fixedTransportRates{rate: testMoney(t, "300.00")},
	)

	h := commands.NewRepriceOrderCommandHandler(factory, svc)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.Pricing())
	require.Equal(t, "1625.00", aggregate.Pricing().FinalTotal().String())
}

func TestRepriceOrderCommandHandler_Handle_RateLookupFails(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.PricingReview)

	cmd, err := commands.NewRepriceOrderCommand(
		aggregate.ID(), testVolume(t, "10.000"), testTransportSpec(), decimal.NewFromInt(25),
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

	svc := services.NewPricingService(
		fixedBaseRates{rate: testMoney(t, "100.00")},
		fixedTransportRates{err: errs.NewObjectNotFoundError("transportRate", "dubai/marina")},
	)

	h := commands.NewRepriceOrderCommandHandler(factory, svc)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	require.Nil(t, aggregate.Pricing())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
