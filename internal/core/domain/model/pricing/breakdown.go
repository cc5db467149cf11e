package pricing

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBaseOperationsIsNotConstructed is returned when a BaseOperations value
// was not created through NewBaseOperations.
var ErrBaseOperationsIsNotConstructed = errors.New("BaseOperations must be created via NewBaseOperations")

// ErrTransportIsNotConstructed is returned when a Transport value was not
// created through NewTransport.
var ErrTransportIsNotConstructed = errors.New("Transport must be created via NewTransport")

// BaseOperations is the warehouse/operations component of a breakdown:
// the order's volume priced at the tier rate resolved by an external
// collaborator. The total is derived as volume times rate and never stored
// independently.
type BaseOperations struct {
	volume kernel.Volume
	rate   kernel.Money

	isConstructed bool
}

// NewBaseOperations creates the base operations component from a volume and
// the tier rate already resolved for it.
func NewBaseOperations(volume kernel.Volume, rate kernel.Money) (BaseOperations, error) {
	if err := volume.Validate(); err != nil {
		return BaseOperations{}, err
	}
	if rate.IsNegative() {
		return BaseOperations{}, errs.NewValueIsInvalidError("rate")
	}

	return BaseOperations{volume: volume, rate: rate, isConstructed: true}, nil
}

// Validate ensures the value was created through NewBaseOperations.
func (b BaseOperations) Validate() error {
	if !b.isConstructed {
		return ErrBaseOperationsIsNotConstructed
	}
	return nil
}

// Volume returns the priced volume in cubic meters.
func (b BaseOperations) Volume() kernel.Volume {
	return b.volume
}

// Rate returns the tier rate per cubic meter.
func (b BaseOperations) Rate() kernel.Money {
	return b.rate
}

// Total returns volume times rate.
func (b BaseOperations) Total() kernel.Money {
	return b.rate.MulDecimal(b.volume.Value())
}

// Transport is the transport component of a breakdown. The base rate is the
// catalog rate for the region, trip type, and vehicle type; the final rate
// is what the order is actually charged, which operators may adjust.
type Transport struct {
	region      string
	tripType    TripType
	vehicleType string
	baseRate    kernel.Money
	finalRate   kernel.Money

	isConstructed bool
}

// NewTransport creates the transport component of a breakdown.
func NewTransport(region string, tripType TripType, vehicleType string, baseRate, finalRate kernel.Money) (Transport, error) {
	if region == "" {
		return Transport{}, errs.NewValueIsRequiredError("region")
	}
	if err := tripType.Validate(); err != nil {
		return Transport{}, err
	}
	if vehicleType == "" {
		return Transport{}, errs.NewValueIsRequiredError("vehicleType")
	}
	if baseRate.IsNegative() || finalRate.IsNegative() {
		return Transport{}, errs.NewValueIsInvalidError("transport rate")
	}

	return Transport{
		region:        region,
		tripType:      tripType,
		vehicleType:   vehicleType,
		baseRate:      baseRate,
		finalRate:     finalRate,
		isConstructed: true,
	}, nil
}

// Validate ensures the value was created through NewTransport.
func (t Transport) Validate() error {
	if !t.isConstructed {
		return ErrTransportIsNotConstructed
	}
	return nil
}

// Region returns the emirate/region the transport serves.
func (t Transport) Region() string {
	return t.region
}

// TripType returns the transport leg direction.
func (t Transport) TripType() TripType {
	return t.tripType
}

// VehicleType returns the vehicle type the rate was resolved for.
func (t Transport) VehicleType() string {
	return t.vehicleType
}

// BaseRate returns the catalog rate before operator adjustment.
func (t Transport) BaseRate() kernel.Money {
	return t.baseRate
}

// FinalRate returns the charged transport rate.
func (t Transport) FinalRate() kernel.Money {
	return t.finalRate
}

// Margin is the platform's percentage markup applied once to the logistics
// subtotal.
type Margin struct {
	percent decimal.Decimal
	amount  kernel.Money
}

// Percent returns the margin percentage.
func (m Margin) Percent() decimal.Decimal {
	return m.percent
}

// Amount returns the computed margin amount.
func (m Margin) Amount() kernel.Money {
	return m.amount
}

// Breakdown is the fully composed price of an order. It is a snapshot of a
// single Compose call; every total in it is derived from the compose inputs.
type Breakdown struct {
	baseOperations    BaseOperations
	transport         Transport
	logisticsSubtotal kernel.Money
	margin            Margin
	finalTotal        kernel.Money
}

// BaseOperations returns the warehouse/operations component.
func (b Breakdown) BaseOperations() BaseOperations {
	return b.baseOperations
}

// Transport returns the transport component.
func (b Breakdown) Transport() Transport {
	return b.transport
}

// LogisticsSubtotal returns base operations total plus transport final rate
// plus the sum of billable line item totals.
func (b Breakdown) LogisticsSubtotal() kernel.Money {
	return b.logisticsSubtotal
}

// Margin returns the applied margin.
func (b Breakdown) Margin() Margin {
	return b.margin
}

// FinalTotal returns logistics subtotal plus margin amount.
func (b Breakdown) FinalTotal() kernel.Money {
	return b.finalTotal
}

// IsEqual compares two breakdowns by their monetary results.
func (b Breakdown) IsEqual(other Breakdown) bool {
	return b.logisticsSubtotal.IsEqual(other.logisticsSubtotal) &&
		b.margin.percent.Equal(other.margin.percent) &&
		b.margin.amount.IsEqual(other.margin.amount) &&
		b.finalTotal.IsEqual(other.finalTotal)
}
