package commands

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/services"
	"rentops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRepriceOrderCommandIsNotConstructed = errors.New(
	"RepriceOrderCommand must be created via NewRepriceOrderCommand constructor",
)

// RepriceOrderCommand represents a request to resolve fresh rates for an
// order's volume and destination and recompute its breakdown.
type RepriceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	volume        kernel.Volume
	transport     services.TransportSpec
	marginPercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRepriceOrderCommand creates a command to reprice an order. The volume
// must be well formed; rate resolution and margin bounds are decided by the
// pricing service.
func NewRepriceOrderCommand(
	orderID kernel.UUID,
	volume kernel.Volume,
	transport services.TransportSpec,
	marginPercent decimal.Decimal,
) (RepriceOrderCommand, error) {
	repriceCommand := RepriceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		repriceCommand.setOrderID(orderID),
		volume.Validate(),
	); err != nil {
		return RepriceOrderCommand{}, err
	}

	repriceCommand.volume = volume
	repriceCommand.transport = transport
	repriceCommand.marginPercent = marginPercent
	return repriceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RepriceOrderCommand) Validate() error {
	return c.guard.Validate(ErrRepriceOrderCommandIsNotConstructed)
}

// OrderID returns the order to reprice.
func (c RepriceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Volume returns the base operations volume in cubic meters.
func (c RepriceOrderCommand) Volume() kernel.Volume {
	return c.volume
}

// Transport returns the transport leg lookup keys.
func (c RepriceOrderCommand) Transport() services.TransportSpec {
	return c.transport
}

// MarginPercent returns the margin to apply on the logistics subtotal.
func (c RepriceOrderCommand) MarginPercent() decimal.Decimal {
	return c.marginPercent
}

func (c *RepriceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
