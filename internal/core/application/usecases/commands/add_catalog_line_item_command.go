package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddCatalogLineItemCommandIsNotConstructed = errors.New(
	"AddCatalogLineItemCommand must be created via NewAddCatalogLineItemCommand constructor",
)

// AddCatalogLineItemCommand represents a request to attach a catalog
// service to an order's ledger. The line item's own validation rules,
// including the positive-quantity check, run when the item is built.
type AddCatalogLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	description string
	category    lineitem.Category
	billingMode lineitem.BillingMode
	quantity    decimal.Decimal
	unit        string
	unitRate    kernel.Money
	metadata    map[string]string

	guard guard.ConstructorGuard
}

// NewAddCatalogLineItemCommand creates a command to attach a catalog item.
func NewAddCatalogLineItemCommand(
	orderID, itemID kernel.UUID,
	description string,
	category lineitem.Category,
	billingMode lineitem.BillingMode,
	quantity decimal.Decimal,
	unit string,
	unitRate kernel.Money,
	metadata map[string]string,
) (AddCatalogLineItemCommand, error) {
	itemCommand := AddCatalogLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
	); err != nil {
		return AddCatalogLineItemCommand{}, err
	}

	itemCommand.description = description
	itemCommand.category = category
	itemCommand.billingMode = billingMode
	itemCommand.quantity = quantity
	itemCommand.unit = unit
	itemCommand.unitRate = unitRate
	itemCommand.metadata = metadata
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCatalogLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCatalogLineItemCommandIsNotConstructed)
}

// OrderID returns the order whose ledger is edited.
func (c AddCatalogLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier assigned to the new line item.
func (c AddCatalogLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewLineItem builds the line item described by the command.
func (c AddCatalogLineItemCommand) NewLineItem() (*lineitem.LineItem, error) {
	return lineitem.NewLineItem(
		c.itemID, c.description, c.category, c.billingMode,
		c.quantity, c.unit, c.unitRate, c.metadata,
	)
}

func (c *AddCatalogLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCatalogLineItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
