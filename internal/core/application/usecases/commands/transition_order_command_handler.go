package commands

import (
	"context"

	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/ports"
)

// TransitionOrderCommandHandler handles order lifecycle transitions. The
// aggregate enforces the transition graph and the per-edge permission; the
// handler owns the transaction and the after-commit notification.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	perms      order.PermissionChecker
	notifier   ports.Notifier
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	perms order.PermissionChecker,
	notifier ports.Notifier,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		perms:      perms,
		notifier:   notifier,
	}
}

// Handle processes the transition command. A notification is published only
// after the transaction commits; a failed publish never undoes a committed
// transition.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	if err = aggregate.Transition(cmd.Target(), cmd.ActorID(), cmd.Notes(), h.perms); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, order.EventName(cmd.Target()), cmd.OrderID())
	return nil
}
