package kernel_test

import (
	"testing"

	"rentops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("1400.00")

		require.NoError(t, err)
		assert.Equal(t, "1400.00", m.String())
	})

	t.Run("should round to two fractional digits", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should fail on garbage input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("abc")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("1000.00")
		b, _ := kernel.NewMoneyFromString("300.00")

		assert.Equal(t, "1300.00", a.Add(b).String())
	})

	t.Run("should multiply by integer quantity", func(t *testing.T) {
		rate, _ := kernel.NewMoneyFromString("50.00")

		assert.Equal(t, "100.00", rate.MulInt(2).String())
	})

	t.Run("should compute percentage", func(t *testing.T) {
		subtotal, _ := kernel.NewMoneyFromString("1400.00")

		assert.Equal(t, "350.00", subtotal.Percent(decimal.NewFromInt(25)).String())
	})

	t.Run("should be stable across repeated recomputation", func(t *testing.T) {
		subtotal, _ := kernel.NewMoneyFromString("1033.33")
		percent := decimal.NewFromFloat(12.5)

		first := subtotal.Percent(percent)
		for range 100 {
			assert.True(t, first.IsEqual(subtotal.Percent(percent)))
		}
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})
}

func TestNewVolume(t *testing.T) {
	t.Run("should create valid volume with three fractional digits", func(t *testing.T) {
		v, err := kernel.NewVolumeFromString("12.5")

		require.NoError(t, err)
		assert.Equal(t, "12.500", v.String())
		require.NoError(t, v.Validate())
	})

	t.Run("should fail with zero volume", func(t *testing.T) {
		_, err := kernel.NewVolumeFromString("0")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not greater than 0")
	})

	t.Run("should fail with negative volume", func(t *testing.T) {
		_, err := kernel.NewVolume(decimal.NewFromInt(-3))

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var v kernel.Volume

		require.Error(t, v.Validate())
	})
}
