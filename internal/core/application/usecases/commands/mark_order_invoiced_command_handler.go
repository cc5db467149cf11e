package commands

import (
	"context"
)

// MarkOrderInvoicedCommandHandler records an issued invoice on an order.
type MarkOrderInvoicedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderInvoicedCommandHandler creates a handler for invoice recording.
func NewMarkOrderInvoicedCommandHandler(uowFactory OrderUoWFactory) MarkOrderInvoicedCommandHandler {
	return MarkOrderInvoicedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice recording command.
func (h *MarkOrderInvoicedCommandHandler) Handle(ctx context.Context, cmd MarkOrderInvoicedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkInvoiced(cmd.InvoiceNumber(), cmd.InvoicedAt()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
