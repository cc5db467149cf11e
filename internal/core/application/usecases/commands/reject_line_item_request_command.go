package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrRejectLineItemRequestCommandIsNotConstructed = errors.New(
	"RejectLineItemRequestCommand must be created via NewRejectLineItemRequestCommand constructor",
)

// RejectLineItemRequestCommand represents an admin rejecting a customer's
// line item request. The note requirement is enforced by the request
// entity so the same rule applies regardless of entry point.
type RejectLineItemRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	adminNote string

	guard guard.ConstructorGuard
}

// NewRejectLineItemRequestCommand creates a command to reject a request.
func NewRejectLineItemRequestCommand(requestID kernel.UUID, adminNote string) (RejectLineItemRequestCommand, error) {
	rejectCommand := RejectLineItemRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rejectCommand.setRequestID(requestID); err != nil {
		return RejectLineItemRequestCommand{}, err
	}

	rejectCommand.adminNote = adminNote
	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectLineItemRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectLineItemRequestCommandIsNotConstructed)
}

// RequestID returns the request to reject.
func (c RejectLineItemRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// AdminNote returns the explanation recorded with the rejection.
func (c RejectLineItemRequestCommand) AdminNote() string {
	return c.adminNote
}

func (c *RejectLineItemRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
