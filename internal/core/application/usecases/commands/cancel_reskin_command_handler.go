package commands

import (
	"context"
)

// CancelReskinCommandHandler cancels a pending reskin request.
type CancelReskinCommandHandler struct {
	uowFactory ReskinRequestUoWFactory
}

// NewCancelReskinCommandHandler creates a handler for reskin cancellation.
func NewCancelReskinCommandHandler(uowFactory ReskinRequestUoWFactory) CancelReskinCommandHandler {
	return CancelReskinCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelReskinCommandHandler) Handle(ctx context.Context, cmd CancelReskinCommand) error {
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

	requestRepo := uow.ReskinRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
