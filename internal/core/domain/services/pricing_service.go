// Package services contains domain services that coordinate aggregates and
// injected collaborator capabilities without performing I/O themselves.
package services

import (
	"context"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// BaseRateCatalog resolves the tiered base-operations rate for a location
// and volume bracket. Tier lookup is an external collaborator; the core
// only composes the resolved rate.
type BaseRateCatalog interface {
	LookupBaseRate(ctx context.Context, country, city string, volume kernel.Volume) (kernel.Money, error)
}

// TransportRateCatalog resolves the transport rate for a destination, trip
// type, and vehicle type. A company-specific rate may override the public
// one when companyID is set.
type TransportRateCatalog interface {
	LookupTransportRate(ctx context.Context, companyID *kernel.UUID, cityID, area string, tripType pricing.TripType, vehicleTypeID string) (kernel.Money, error)
}

// TransportSpec carries the lookup keys for an order's transport leg.
type TransportSpec struct {
	Country     string
	City        string
	Area        string
	TripType    pricing.TripType
	VehicleType string

	// FinalRate, when set, overrides the catalog rate with an
	// operator-adjusted figure.
	FinalRate *kernel.Money
}

// PricingService resolves rates through the injected catalogs and installs
// a freshly composed breakdown on the order. It holds no state of its own,
// so a single instance is safe for concurrent use.
type PricingService struct {
	baseRates      BaseRateCatalog
	transportRates TransportRateCatalog
}

// NewPricingService creates a pricing service over the given rate catalogs.
func NewPricingService(baseRates BaseRateCatalog, transportRates TransportRateCatalog) *PricingService {
	return &PricingService{
		baseRates:      baseRates,
		transportRates: transportRates,
	}
}

// Reprice resolves the base and transport rates for the order's volume and
// destination and recomputes its breakdown with the given margin. On any
// lookup or validation failure the order is left untouched.
func (s *PricingService) Reprice(
	ctx context.Context,
	o *order.Order,
	volume kernel.Volume,
	spec TransportSpec,
	marginPercent decimal.Decimal,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	baseRate, err := s.baseRates.LookupBaseRate(ctx, spec.Country, spec.City, volume)
	if err != nil {
		return err
	}

	base, err := pricing.NewBaseOperations(volume, baseRate)
	if err != nil {
		return err
	}

	companyID := o.CompanyID()
	transportRate, err := s.transportRates.LookupTransportRate(ctx, &companyID, spec.City, spec.Area, spec.TripType, spec.VehicleType)
	if err != nil {
		return err
	}

	finalRate := transportRate
	if spec.FinalRate != nil {
		finalRate = *spec.FinalRate
	}

	transport, err := pricing.NewTransport(spec.City, spec.TripType, spec.VehicleType, transportRate, finalRate)
	if err != nil {
		return err
	}

	return o.SetPricingInputs(base, transport, marginPercent)
}
