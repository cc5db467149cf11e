package rates_test

import (
	"context"
	"testing"

	"rentops/internal/adapters/out/rates"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func volume(t *testing.T, s string) kernel.Volume {
	t.Helper()
	v, err := kernel.NewVolumeFromString(s)
	require.NoError(t, err)
	return v
}

func TestStaticBaseRateCatalog(t *testing.T) {
	ctx := context.Background()

	catalog := rates.NewStaticBaseRateCatalog()
	catalog.AddTable("AE", "Dubai", []rates.VolumeBracket{
		{UpTo: decimal.NewFromInt(10), Rate: money(t, "120.00")},
		{UpTo: decimal.NewFromInt(50), Rate: money(t, "100.00")},
	}, money(t, "85.00"))

	t.Run("first bracket", func(t *testing.T) {
		rate, err := catalog.LookupBaseRate(ctx, "AE", "Dubai", volume(t, "8.000"))

		require.NoError(t, err)
		assert.Equal(t, "120.00", rate.String())
	})

	t.Run("bracket boundary is inclusive", func(t *testing.T) {
		rate, err := catalog.LookupBaseRate(ctx, "AE", "Dubai", volume(t, "10.000"))

		require.NoError(t, err)
		assert.Equal(t, "120.00", rate.String())
	})

	t.Run("beyond last bracket uses open rate", func(t *testing.T) {
		rate, err := catalog.LookupBaseRate(ctx, "AE", "Dubai", volume(t, "80.000"))

		require.NoError(t, err)
		assert.Equal(t, "85.00", rate.String())
	})

	t.Run("location is case insensitive", func(t *testing.T) {
		rate, err := catalog.LookupBaseRate(ctx, "ae", "DUBAI", volume(t, "20.000"))

		require.NoError(t, err)
		assert.Equal(t, "100.00", rate.String())
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := catalog.LookupBaseRate(ctx, "AE", "Sharjah", volume(t, "8.000"))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStaticTransportRateCatalog(t *testing.T) {
	ctx := context.Background()

	catalog := rates.NewStaticTransportRateCatalog()
	catalog.AddRate("dubai", "marina", pricing.RoundTrip, "box-truck", money(t, "300.00"))

	company := kernel.NewUUID()
	catalog.AddContractRate(company, "dubai", "marina", pricing.RoundTrip, "box-truck", money(t, "250.00"))

	t.Run("shared rate", func(t *testing.T) {
		rate, err := catalog.LookupTransportRate(ctx, nil, "dubai", "marina", pricing.RoundTrip, "box-truck")

		require.NoError(t, err)
		assert.Equal(t, "300.00", rate.String())
	})

	t.Run("contract rate overrides shared", func(t *testing.T) {
		rate, err := catalog.LookupTransportRate(ctx, &company, "dubai", "marina", pricing.RoundTrip, "box-truck")

		require.NoError(t, err)
		assert.Equal(t, "250.00", rate.String())
	})

	t.Run("company without contract falls back to shared", func(t *testing.T) {
		other := kernel.NewUUID()

		rate, err := catalog.LookupTransportRate(ctx, &other, "dubai", "marina", pricing.RoundTrip, "box-truck")

		require.NoError(t, err)
		assert.Equal(t, "300.00", rate.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		_, err := catalog.LookupTransportRate(ctx, nil, "dubai", "jumeirah", pricing.RoundTrip, "box-truck")

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
