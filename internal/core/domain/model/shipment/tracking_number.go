package shipment

import (
	"fmt"
	"regexp"

	"logistics/internal/pkg/errs"
)

// trackingNumberPattern accepts the formats produced by booking and by
// partner carriers: 8-32 uppercase alphanumerics with optional dashes.
var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{6,30}[A-Z0-9]$`)

// TrackingNumber is the immutable public identifier of a shipment.
// Once assigned at booking it never changes.
//
// The zero value is invalid; use NewTrackingNumber.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber validates and creates a tracking number.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking number")
	}
	if !trackingNumberPattern.MatchString(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("%q does not match the tracking number format", value))
	}
	return TrackingNumber{value: value}, nil
}

// String returns the tracking number text. Implements fmt.Stringer.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks the tracking number was created via NewTrackingNumber.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("tracking number must be created via NewTrackingNumber")
	}
	return nil
}
