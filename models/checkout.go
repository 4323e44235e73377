// models/checkout.go
package models

// Payment methods offered on the checkout screen.
const (
	PaymentMethodEasyPaisa = "easypaisa"
	PaymentMethodDirect    = "direct"
)

// Checkout carries everything the payment screen needs. It is built per
// request and never stored.
type Checkout struct {
	VenueID          string `json:"venueId"`
	VenueName        string `json:"venueName"`
	Amount           string `json:"amount"`
	FormattedAmount  string `json:"formattedAmount"`
	Category         string `json:"category"`
	MobileNumber     string `json:"mobileNumber"`
	BookingReference string `json:"bookingReference"`
	PaymentMethod    string `json:"paymentMethod"`
	Mobile           bool   `json:"mobile"`

	// DeepLink is the wallet link on mobile, or the dial link otherwise.
	DeepLink  string `json:"deepLink,omitempty"`
	DialLink  string `json:"dialLink"`
	QRCodeURL string `json:"qrCodeUrl,omitempty"`
}
