package commands

import (
	"context"
)

// SetJobNumberCommandHandler sets or clears an order's job number.
type SetJobNumberCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetJobNumberCommandHandler creates a handler for job number updates.
func NewSetJobNumberCommandHandler(uowFactory OrderUoWFactory) SetJobNumberCommandHandler {
	return SetJobNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job number update command.
func (h *SetJobNumberCommandHandler) Handle(ctx context.Context, cmd SetJobNumberCommand) error {
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

	aggregate.SetJobNumber(cmd.JobNumber())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
