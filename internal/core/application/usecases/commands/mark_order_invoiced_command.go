package commands

import (
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"
	"rentops/internal/pkg/guard"
)

var ErrMarkOrderInvoicedCommandIsNotConstructed = errors.New(
	"MarkOrderInvoicedCommand must be created via NewMarkOrderInvoicedCommand constructor",
)

// MarkOrderInvoicedCommand represents a request to record that an invoice
// was issued for an order.
type MarkOrderInvoicedCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	invoiceNumber string
	invoicedAt    time.Time

	guard guard.ConstructorGuard
}

// NewMarkOrderInvoicedCommand creates a command to record an issued invoice.
// The invoice number and issue date are required.
func NewMarkOrderInvoicedCommand(orderID kernel.UUID, invoiceNumber string, invoicedAt time.Time) (MarkOrderInvoicedCommand, error) {
	invoiceCommand := MarkOrderInvoicedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		invoiceCommand.setOrderID(orderID),
		invoiceCommand.setInvoiceNumber(invoiceNumber),
		invoiceCommand.setInvoicedAt(invoicedAt),
	); err != nil {
		return MarkOrderInvoicedCommand{}, err
	}

	return invoiceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderInvoicedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderInvoicedCommandIsNotConstructed)
}

// OrderID returns the invoiced order.
func (c MarkOrderInvoicedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InvoiceNumber returns the external invoice number.
func (c MarkOrderInvoicedCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

// InvoicedAt returns when the invoice was issued.
func (c MarkOrderInvoicedCommand) InvoicedAt() time.Time {
	return c.invoicedAt
}

func (c *MarkOrderInvoicedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderInvoicedCommand) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}

	c.invoiceNumber = invoiceNumber
	return nil
}

func (c *MarkOrderInvoicedCommand) setInvoicedAt(invoicedAt time.Time) error {
	if invoicedAt.IsZero() {
		return errs.NewValueIsRequiredError("invoicedAt")
	}

	c.invoicedAt = invoicedAt
	return nil
}
