package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrCancelReskinCommandIsNotConstructed = errors.New(
	"CancelReskinCommand must be created via NewCancelReskinCommand constructor",
)

// CancelReskinCommand represents cancelling a pending asset reskin. No
// line item is produced and the source asset keeps its identity.
type CancelReskinCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelReskinCommand creates a command to cancel a reskin request.
func NewCancelReskinCommand(requestID kernel.UUID, reason string) (CancelReskinCommand, error) {
	cancelCommand := CancelReskinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setRequestID(requestID); err != nil {
		return CancelReskinCommand{}, err
	}

	cancelCommand.reason = reason
	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelReskinCommand) Validate() error {
	return c.guard.Validate(ErrCancelReskinCommandIsNotConstructed)
}

// RequestID returns the reskin request to cancel.
func (c CancelReskinCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason returns the explanation recorded with the cancellation.
func (c CancelReskinCommand) Reason() string {
	return c.reason
}

func (c *CancelReskinCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
