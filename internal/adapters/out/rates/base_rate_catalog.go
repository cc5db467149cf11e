// Package rates provides in-memory rate catalogs. The production system
// sources tier and transport rates from external pricing services; these
// static tables stand in for them in the composition root and in tests.
package rates

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// VolumeBracket is one tier of a location's base rate table. The bracket
// applies to volumes up to and including UpTo cubic meters.
type VolumeBracket struct {
	UpTo decimal.Decimal
	Rate kernel.Money
}

// StaticBaseRateCatalog resolves per-cubic-meter base operation rates from
// bracketed tables keyed by country and city. Lookups beyond the last
// bracket fall through to the open rate.
type StaticBaseRateCatalog struct {
	tables    map[string][]VolumeBracket
	openRates map[string]kernel.Money
}

// NewStaticBaseRateCatalog creates an empty base rate catalog.
func NewStaticBaseRateCatalog() *StaticBaseRateCatalog {
	return &StaticBaseRateCatalog{
		tables:    make(map[string][]VolumeBracket),
		openRates: make(map[string]kernel.Money),
	}
}

// AddTable registers the bracket table for a location. Brackets are kept
// sorted by their upper bound; openRate applies to volumes beyond the last
// bracket.
func (c *StaticBaseRateCatalog) AddTable(country, city string, brackets []VolumeBracket, openRate kernel.Money) {
	key := locationKey(country, city)

	sorted := make([]VolumeBracket, len(brackets))
	copy(sorted, brackets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpTo.LessThan(sorted[j].UpTo)
	})

	c.tables[key] = sorted
	c.openRates[key] = openRate
}

// LookupBaseRate resolves the tier rate for the location and volume.
func (c *StaticBaseRateCatalog) LookupBaseRate(
	_ context.Context,
	country, city string,
	volume kernel.Volume,
) (kernel.Money, error) {
	key := locationKey(country, city)

	brackets, ok := c.tables[key]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("baseRateTable", key)
	}

	for _, bracket := range brackets {
		if volume.Value().LessThanOrEqual(bracket.UpTo) {
			return bracket.Rate, nil
		}
	}

	return c.openRates[key], nil
}

func locationKey(country, city string) string {
	return fmt.Sprintf("%s/%s", strings.ToLower(country), strings.ToLower(city))
}
