package kernel

import (
	"fmt"

	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// volumeScale is the number of fractional digits carried by volume
// measurements in cubic meters.
const volumeScale = 3

// Volume is an immutable warehouse/operations volume in cubic meters with
// three fractional digits. Volume must be positive.
type Volume struct {
	value decimal.Decimal
}

// NewVolume creates a Volume from a decimal, rounding to the volume scale.
// Returns an error if the value is zero or negative.
func NewVolume(value decimal.Decimal) (Volume, error) {
	rounded := value.Round(volumeScale)
	if !rounded.IsPositive() {
		return Volume{}, errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%s is not greater than 0", value.String()))
	}
	return Volume{value: rounded}, nil
}

// NewVolumeFromString parses a Volume from its decimal string representation.
func NewVolumeFromString(s string) (Volume, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Volume{}, errs.NewValueIsInvalidErrorWithCause("volume", err)
	}
	return NewVolume(d)
}

// Value returns the underlying decimal value.
func (v Volume) Value() decimal.Decimal {
	return v.value
}

// IsEqual compares two volumes for numeric equality.
func (v Volume) IsEqual(other Volume) bool {
	return v.value.Equal(other.value)
}

// Validate ensures the Volume was created through a constructor function.
func (v Volume) Validate() error {
	if !v.value.IsPositive() {
		return errs.NewValueIsRequiredError("volume must be created via NewVolume or NewVolumeFromString")
	}
	return nil
}

// String returns the volume formatted with the volume scale, e.g. "12.500".
func (v Volume) String() string {
	return v.value.StringFixed(volumeScale)
}
