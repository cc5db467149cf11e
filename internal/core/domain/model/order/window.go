package order

import (
	"fmt"
	"time"

	"rentops/internal/pkg/errs"
)

// ErrWindowIsNotConstructed is returned when a Window value was not created
// through NewWindow.
var ErrWindowIsNotConstructed = errs.NewValueIsRequiredError("window must be created via NewWindow")

// Window is a paired start/end timestamp, used for the delivery and pickup
// slots of a confirmed order. Both members of a pair are always set
// together; the start must precede the end.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow creates a window, validating that both timestamps are set and
// start precedes end.
func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errs.NewMissingFieldsError("windowStart", "windowEnd")
	}
	if !start.Before(end) {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("window",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	return Window{start: start, end: end}, nil
}

// Start returns the window's opening timestamp.
func (w Window) Start() time.Time {
	return w.start
}

// End returns the window's closing timestamp.
func (w Window) End() time.Time {
	return w.end
}

// Validate ensures the Window was created through NewWindow.
func (w Window) Validate() error {
	if w.start.IsZero() || w.end.IsZero() {
		return ErrWindowIsNotConstructed
	}
	return nil
}
