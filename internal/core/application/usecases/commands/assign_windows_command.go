package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/guard"
)

var ErrAssignWindowsCommandIsNotConstructed = errors.New(
	"AssignWindowsCommand must be created via NewAssignWindowsCommand constructor",
)

// AssignWindowsCommand represents a request to schedule the delivery and
// pickup windows of a confirmed order.
type AssignWindowsCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	deliveryWindow order.Window
	pickupWindow   order.Window

	guard guard.ConstructorGuard
}

// NewAssignWindowsCommand creates a command to schedule an order's windows.
// Each window must already be well formed; whether the order accepts them
// is decided by the aggregate.
func NewAssignWindowsCommand(orderID kernel.UUID, deliveryWindow, pickupWindow order.Window) (AssignWindowsCommand, error) {
	windowsCommand := AssignWindowsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		windowsCommand.setOrderID(orderID),
		deliveryWindow.Validate(),
		pickupWindow.Validate(),
	); err != nil {
		return AssignWindowsCommand{}, err
	}

	windowsCommand.deliveryWindow = deliveryWindow
	windowsCommand.pickupWindow = pickupWindow
	return windowsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWindowsCommand) Validate() error {
	return c.guard.Validate(ErrAssignWindowsCommandIsNotConstructed)
}

// OrderID returns the order to schedule.
func (c AssignWindowsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryWindow returns the window in which the assets arrive.
func (c AssignWindowsCommand) DeliveryWindow() order.Window {
	return c.deliveryWindow
}

// PickupWindow returns the window in which the assets are collected.
func (c AssignWindowsCommand) PickupWindow() order.Window {
	return c.pickupWindow
}

func (c *AssignWindowsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
