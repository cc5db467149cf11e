package commands

import (
	"context"

	"rentops/internal/core/domain/model/order"
)

// RemoveLineItemCommandHandler detaches a line item from an order's
// ledger. Items materialized by completed reskin requests cannot be
// removed; the aggregate rejects those.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	editPolicy order.EditPolicy
}

// NewRemoveLineItemCommandHandler creates a handler for ledger removals.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory, editPolicy order.EditPolicy) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
		editPolicy: editPolicy,
	}
}

// Handle processes the ledger removal command.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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

	if err = aggregate.RemoveLineItem(cmd.ItemID(), h.editPolicy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
