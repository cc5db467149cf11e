package commands

import (
	"context"

	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/ports"
)

// SubmitForApprovalCommandHandler routes an order out of pricing review.
// It is a convenience wrapper over the plain transition: the same graph and
// permission rules apply, only the target is restricted.
type SubmitForApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
	perms      order.PermissionChecker
	notifier   ports.Notifier
}

// NewSubmitForApprovalCommandHandler creates a handler for review routing.
func NewSubmitForApprovalCommandHandler(
	uowFactory OrderUoWFactory,
	perms order.PermissionChecker,
	notifier ports.Notifier,
) SubmitForApprovalCommandHandler {
	return SubmitForApprovalCommandHandler{
		uowFactory: uowFactory,
		perms:      perms,
		notifier:   notifier,
	}
}

// Handle processes the routing command.
func (h *SubmitForApprovalCommandHandler) Handle(ctx context.Context, cmd SubmitForApprovalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	transitionCmd, err := NewTransitionOrderCommand(cmd.OrderID(), cmd.Target(), cmd.ActorID(), "submitted for approval")
	if err != nil {
		return err
	}

	transitionHandler := NewTransitionOrderCommandHandler(h.uowFactory, h.perms, h.notifier)
	return transitionHandler.Handle(ctx, transitionCmd)
}
