package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to confirm that an order's
// invoice was settled. Field completeness is judged by the aggregate so a
// single error can name every missing field at once.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payment order.Payment

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to confirm a payment.
func NewRecordPaymentCommand(orderID kernel.UUID, payment order.Payment) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := paymentCommand.setOrderID(orderID); err != nil {
		return RecordPaymentCommand{}, err
	}

	paymentCommand.payment = payment
	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the paid order.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payment returns how the invoice was settled.
func (c RecordPaymentCommand) Payment() order.Payment {
	return c.payment
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
