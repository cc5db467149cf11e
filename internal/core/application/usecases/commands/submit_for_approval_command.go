package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/guard"
)

var (
	ErrSubmitForApprovalCommandIsNotConstructed = errors.New(
		"SubmitForApprovalCommand must be created via NewSubmitForApprovalCommand constructor",
	)
	ErrApprovalTargetIsInvalid = errors.New("approval target must be Quoted or PendingApproval")
)

// SubmitForApprovalCommand represents a request to route an order out of
// pricing review. Whether review produces a quote directly or parks the
// order for customer approval is a workflow routing decision, so the caller
// names the target.
type SubmitForApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitForApprovalCommand creates a command to route an order out of
// pricing review. The target must be Quoted or PendingApproval.
func NewSubmitForApprovalCommand(orderID kernel.UUID, target order.Status, actorID kernel.UUID) (SubmitForApprovalCommand, error) {
	submitCommand := SubmitForApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setOrderID(orderID),
		submitCommand.setTarget(target),
		submitCommand.setActorID(actorID),
	); err != nil {
		return SubmitForApprovalCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitForApprovalCommand) Validate() error {
	return c.guard.Validate(ErrSubmitForApprovalCommandIsNotConstructed)
}

// OrderID returns the order to route.
func (c SubmitForApprovalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the caller-chosen routing target.
func (c SubmitForApprovalCommand) Target() order.Status {
	return c.target
}

// ActorID returns the user routing the order.
func (c SubmitForApprovalCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *SubmitForApprovalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitForApprovalCommand) setTarget(target order.Status) error {
	if target != order.Quoted && target != order.PendingApproval {
		return ErrApprovalTargetIsInvalid
	}

	c.target = target
	return nil
}

func (c *SubmitForApprovalCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
