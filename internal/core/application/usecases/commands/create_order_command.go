package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrContactNameIsRequired  = errors.New("contact name is required")
	ErrContactEmailIsRequired = errors.New("contact email is required")
	ErrVenueNameIsRequired    = errors.New("venue name is required")
)

// CreateOrderCommand represents a request to open a new rental order in
// Draft for a company. Encapsulates the contact and venue details captured
// at intake.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	companyID kernel.UUID
	actorID   kernel.UUID
	details   order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new rental order.
// Validates that the identifiers are valid and the contact name, contact
// email, and venue name are present.
func NewCreateOrderCommand(orderID, companyID, actorID kernel.UUID, details order.Details) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCompanyID(companyID),
		orderCommand.setActorID(actorID),
		orderCommand.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompanyID returns the company the order belongs to.
func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// ActorID returns the user opening the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Details returns the contact and venue details captured at intake.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.ContactName == "" {
		return ErrContactNameIsRequired
	}
	if details.ContactEmail == "" {
		return ErrContactEmailIsRequired
	}
	if details.VenueName == "" {
		return ErrVenueNameIsRequired
	}

	c.details = details
	return nil
}
