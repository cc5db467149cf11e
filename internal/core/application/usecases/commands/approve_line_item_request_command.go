package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/pkg/guard"
)

var ErrApproveLineItemRequestCommandIsNotConstructed = errors.New(
	"ApproveLineItemRequestCommand must be created via NewApproveLineItemRequestCommand constructor",
)

// ApproveLineItemRequestCommand represents an admin approving a customer's
// line item request. The admin-edited overrides become the attributes of
// the materialized line item; their validation runs on approval so the
// request stays untouched when the overrides are bad.
type ApproveLineItemRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	itemID    kernel.UUID
	overrides lineitem.Overrides

	guard guard.ConstructorGuard
}

// NewApproveLineItemRequestCommand creates a command to approve a request.
func NewApproveLineItemRequestCommand(requestID, itemID kernel.UUID, overrides lineitem.Overrides) (ApproveLineItemRequestCommand, error) {
	approveCommand := ApproveLineItemRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setRequestID(requestID),
		approveCommand.setItemID(itemID),
	); err != nil {
		return ApproveLineItemRequestCommand{}, err
	}

	approveCommand.overrides = overrides
	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveLineItemRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveLineItemRequestCommandIsNotConstructed)
}

// RequestID returns the request to approve.
func (c ApproveLineItemRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ItemID returns the identifier assigned to the materialized line item.
func (c ApproveLineItemRequestCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Overrides returns the admin-edited line item attributes.
func (c ApproveLineItemRequestCommand) Overrides() lineitem.Overrides {
	return c.overrides
}

func (c *ApproveLineItemRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ApproveLineItemRequestCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
