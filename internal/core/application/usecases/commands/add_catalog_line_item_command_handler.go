package commands

import (
	"context"

	"rentops/internal/core/domain/model/order"
)

// AddCatalogLineItemCommandHandler attaches a catalog line item to an
// order. The injected edit policy decides in which statuses the ledger is
// still editable.
type AddCatalogLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	editPolicy order.EditPolicy
}

// NewAddCatalogLineItemCommandHandler creates a handler for ledger additions.
func NewAddCatalogLineItemCommandHandler(uowFactory OrderUoWFactory, editPolicy order.EditPolicy) AddCatalogLineItemCommandHandler {
	return AddCatalogLineItemCommandHandler{
		uowFactory: uowFactory,
		editPolicy: editPolicy,
	}
}

// Handle processes the ledger addition command.
func (h *AddCatalogLineItemCommandHandler) Handle(ctx context.Context, cmd AddCatalogLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := cmd.NewLineItem()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddLineItem(item, h.editPolicy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
