package payment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentDetails is built when a user reaches the payment step and is
// discarded afterwards. BookingReference is generated once per attempt.
type PaymentDetails struct {
	VenueID          string          `json:"venueId"`
	VenueName        string          `json:"venueName"`
	Amount           decimal.Decimal `json:"amount"`
	MobileNumber     string          `json:"mobileNumber"`
	BookingReference string          `json:"bookingReference"`
}

// ValidationError reports a missing or malformed payment field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the fields a payment link depends on. The link builders
// themselves do not validate.
func (d PaymentDetails) Validate() error {
	if strings.TrimSpace(d.VenueID) == "" {
		return &ValidationError{Field: "venueId", Reason: "must not be empty"}
	}
	if strings.TrimSpace(d.MobileNumber) == "" {
		return &ValidationError{Field: "mobileNumber", Reason: "must not be empty"}
	}
	if strings.TrimSpace(d.BookingReference) == "" {
		return &ValidationError{Field: "bookingReference", Reason: "must not be empty"}
	}
	if !d.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}
