package commands

import (
	"context"
)

// RejectLineItemRequestCommandHandler resolves a line item request as
// rejected. No line item is produced.
type RejectLineItemRequestCommandHandler struct {
	uowFactory LineItemRequestUoWFactory
}

// NewRejectLineItemRequestCommandHandler creates a handler for request rejection.
func NewRejectLineItemRequestCommandHandler(uowFactory LineItemRequestUoWFactory) RejectLineItemRequestCommandHandler {
	return RejectLineItemRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectLineItemRequestCommandHandler) Handle(ctx context.Context, cmd RejectLineItemRequestCommand) error {
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

	if err = request.Reject(cmd.AdminNote()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
