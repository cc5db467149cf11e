package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrSetJobNumberCommandIsNotConstructed = errors.New(
	"SetJobNumberCommand must be created via NewSetJobNumberCommand constructor",
)

// SetJobNumberCommand represents a request to set or clear the operational
// job number of an order. A nil value clears the field; job numbers may be
// corrected in any status.
type SetJobNumberCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	jobNumber *string

	guard guard.ConstructorGuard
}

// NewSetJobNumberCommand creates a command to set or clear a job number.
func NewSetJobNumberCommand(orderID kernel.UUID, jobNumber *string) (SetJobNumberCommand, error) {
	jobCommand := SetJobNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := jobCommand.setOrderID(orderID); err != nil {
		return SetJobNumberCommand{}, err
	}

	if jobNumber != nil {
		value := *jobNumber
		jobCommand.jobNumber = &value
	}
	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetJobNumberCommand) Validate() error {
	return c.guard.Validate(ErrSetJobNumberCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c SetJobNumberCommand) OrderID() kernel.UUID {
	return c.orderID
}

// JobNumber returns the new job number, or nil to clear it.
func (c SetJobNumberCommand) JobNumber() *string {
	return c.jobNumber
}

func (c *SetJobNumberCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
