package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrCompleteReskinCommandIsNotConstructed = errors.New(
	"CompleteReskinCommand must be created via NewCompleteReskinCommand constructor",
)

// CompleteReskinCommand represents warehouse staff finishing an asset
// reskin. The name and photo requirements are enforced by the request
// entity; the admin-entered cost becomes the price of the resulting
// Reskin line item.
type CompleteReskinCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	itemID           kernel.UUID
	newAssetName     string
	completionPhotos []string
	cost             kernel.Money

	guard guard.ConstructorGuard
}

// NewCompleteReskinCommand creates a command to complete a reskin request.
func NewCompleteReskinCommand(
	requestID, itemID kernel.UUID,
	newAssetName string,
	completionPhotos []string,
	cost kernel.Money,
) (CompleteReskinCommand, error) {
	completeCommand := CompleteReskinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setRequestID(requestID),
		completeCommand.setItemID(itemID),
	); err != nil {
		return CompleteReskinCommand{}, err
	}

	completeCommand.newAssetName = newAssetName
	completeCommand.completionPhotos = append([]string(nil), completionPhotos...)
	completeCommand.cost = cost
	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteReskinCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReskinCommandIsNotConstructed)
}

// RequestID returns the reskin request to complete.
func (c CompleteReskinCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ItemID returns the identifier assigned to the resulting line item.
func (c CompleteReskinCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewAssetName returns the name the asset carries after the reskin.
func (c CompleteReskinCommand) NewAssetName() string {
	return c.newAssetName
}

// CompletionPhotos returns the photo references documenting the work.
func (c CompleteReskinCommand) CompletionPhotos() []string {
	return append([]string(nil), c.completionPhotos...)
}

// Cost returns the admin-entered price of the reskin work.
func (c CompleteReskinCommand) Cost() kernel.Money {
	return c.cost
}

func (c *CompleteReskinCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CompleteReskinCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
