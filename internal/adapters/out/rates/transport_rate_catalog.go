package rates

import (
	"context"
	"fmt"
	"strings"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"
)

// StaticTransportRateCatalog resolves transport rates from a flat table
// keyed by city, area, trip type, and vehicle type. Company-specific
// contract rates, when present, take precedence over the shared table.
type StaticTransportRateCatalog struct {
	shared   map[string]kernel.Money
	contract map[string]kernel.Money
}

// NewStaticTransportRateCatalog creates an empty transport rate catalog.
func NewStaticTransportRateCatalog() *StaticTransportRateCatalog {
	return &StaticTransportRateCatalog{
		shared:   make(map[string]kernel.Money),
		contract: make(map[string]kernel.Money),
	}
}

// AddRate registers a shared rate for a route and vehicle type.
func (c *StaticTransportRateCatalog) AddRate(
	cityID, area string,
	tripType pricing.TripType,
	vehicleTypeID string,
	rate kernel.Money,
) {
	c.shared[routeKey(cityID, area, tripType, vehicleTypeID)] = rate
}

// AddContractRate registers a company-specific rate that overrides the
// shared table for that company's orders.
func (c *StaticTransportRateCatalog) AddContractRate(
	companyID kernel.UUID,
	cityID, area string,
	tripType pricing.TripType,
	vehicleTypeID string,
	rate kernel.Money,
) {
	key := companyID.String() + "/" + routeKey(cityID, area, tripType, vehicleTypeID)
	c.contract[key] = rate
}

// LookupTransportRate resolves the rate for a route, preferring the
// company's contract rate when one exists.
func (c *StaticTransportRateCatalog) LookupTransportRate(
	_ context.Context,
	companyID *kernel.UUID,
	cityID, area string,
	tripType pricing.TripType,
	vehicleTypeID string,
) (kernel.Money, error) {
	key := routeKey(cityID, area, tripType, vehicleTypeID)

	if companyID != nil {
		if rate, ok := c.contract[companyID.String()+"/"+key]; ok {
			return rate, nil
		}
	}

	if rate, ok := c.shared[key]; ok {
		return rate, nil
	}

	return kernel.Money{}, errs.NewObjectNotFoundError("transportRate", key)
}

func routeKey(cityID, area string, tripType pricing.TripType, vehicleTypeID string) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		strings.ToLower(cityID), strings.ToLower(area), tripType.String(), strings.ToLower(vehicleTypeID))
}
