package commands

import (
	"context"
)

// AssignWindowsCommandHandler schedules delivery and pickup windows on a
// confirmed order.
type AssignWindowsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignWindowsCommandHandler creates a handler for window assignment.
func NewAssignWindowsCommandHandler(uowFactory OrderUoWFactory) AssignWindowsCommandHandler {
	return AssignWindowsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the window assignment command.
func (h *AssignWindowsCommandHandler) Handle(ctx context.Context, cmd AssignWindowsCommand) error {
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

	if err = aggregate.AssignWindows(cmd.DeliveryWindow(), cmd.PickupWindow()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
