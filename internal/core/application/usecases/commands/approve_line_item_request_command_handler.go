package commands

import (
	"context"

	"rentops/internal/core/domain/model/order"
)

// ApproveLineItemRequestCommandHandler resolves a line item request as
// approved and attaches the materialized item to the owning order. Both
// writes happen in one transaction so a ledger edit rejection (for example
// an order past its editable window) also rolls back the resolution.
type ApproveLineItemRequestCommandHandler struct {
	uowFactory LineItemRequestUoWFactory
	editPolicy order.EditPolicy
}

// NewApproveLineItemRequestCommandHandler creates a handler for request approval.
func NewApproveLineItemRequestCommandHandler(uowFactory LineItemRequestUoWFactory, editPolicy order.EditPolicy) ApproveLineItemRequestCommandHandler {
	return ApproveLineItemRequestCommandHandler{
		uowFactory: uowFactory,
		editPolicy: editPolicy,
	}
}

// Handle processes the approval command.
func (h *ApproveLineItemRequestCommandHandler) Handle(ctx context.Context, cmd ApproveLineItemRequestCommand) error {
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

	requestRepo := uow.LineItemRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	item, err := request.Approve(cmd.ItemID(), cmd.Overrides())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, request.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddLineItem(item, h.editPolicy); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
