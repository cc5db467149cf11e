package commands

import (
	"context"

	"rentops/internal/core/domain/services"
)

// RepriceOrderCommandHandler resolves rates through the pricing service and
// persists the recomputed breakdown.
type RepriceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    *services.PricingService
}

// NewRepriceOrderCommandHandler creates a handler for repricing.
func NewRepriceOrderCommandHandler(uowFactory OrderUoWFactory, pricing *services.PricingService) RepriceOrderCommandHandler {
	return RepriceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the repricing command.
func (h *RepriceOrderCommandHandler) Handle(ctx context.Context, cmd RepriceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.pricing.Reprice(ctx, aggregate, cmd.Volume(), cmd.Transport(), cmd.MarginPercent()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
