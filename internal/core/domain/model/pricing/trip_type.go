package pricing

import (
	"fmt"

	"rentops/internal/pkg/errs"
)

// TripType is the direction of a transport leg.
type TripType int

const (
	// TripTypeUnknown represents an invalid or undefined trip type.
	TripTypeUnknown TripType = iota

	// OneWay covers delivery or collection only.
	OneWay

	// RoundTrip covers delivery and collection on the same rate.
	RoundTrip
)

func getTripTypeStrings() map[TripType]string {
	return map[TripType]string{
		TripTypeUnknown: "Unknown",
		OneWay:          "OneWay",
		RoundTrip:       "RoundTrip",
	}
}

// Validate checks if the TripType value is valid.
func (t TripType) Validate() error {
	if _, ok := getTripTypeStrings()[t]; !ok || t == TripTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("tripType", fmt.Errorf("%d is not a valid trip type", t))
	}
	return nil
}

// String returns the human-readable name of the trip type.
func (t TripType) String() string {
	if str, ok := getTripTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TripTypeFromString parses a trip type from its string representation, as
// used by transport adapters.
func TripTypeFromString(s string) (TripType, error) {
	for tripType, str := range getTripTypeStrings() {
		if str == s && tripType != TripTypeUnknown {
			return tripType, nil
		}
	}
	return TripTypeUnknown, errs.NewValueIsInvalidErrorWithCause("tripType", fmt.Errorf("%q is not a valid trip type", s))
}
