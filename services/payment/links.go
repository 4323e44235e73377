package payment

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultScheme       = "easypaisa"
	DefaultQRServiceURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultQRSize       = 200
)

// LinkBuilder turns PaymentDetails into the artifacts shown on the payment
// screen. All methods are pure.
type LinkBuilder struct {
	Scheme       string
	QRServiceURL string
	QRSize       int
}

func DefaultLinkBuilder() LinkBuilder {
	return LinkBuilder{
		Scheme:       DefaultScheme,
		QRServiceURL: DefaultQRServiceURL,
		QRSize:       DefaultQRSize,
	}
}

// BuildDeepLink returns the wallet deep link on mobile and the dial link
// everywhere else. The dial link carries no payment metadata.
func (b LinkBuilder) BuildDeepLink(d PaymentDetails, mobile bool) string {
	if !mobile {
		return DialLink(d)
	}
	params := url.Values{}
	params.Set("number", d.MobileNumber)
	params.Set("amount", d.Amount.String())
	params.Set("reference", d.BookingReference)
	params.Set("description", "Booking for "+d.VenueName)
	return fmt.Sprintf("%s://payment?%s", b.scheme(), params.Encode())
}

// DialLink is always exactly "tel:" followed by the mobile number.
func DialLink(d PaymentDetails) string {
	return "tel:" + d.MobileNumber
}

// PaymentText is the plain-text summary encoded into the QR code.
func PaymentText(d PaymentDetails) string {
	var sb strings.Builder
	sb.WriteString("EasyPaisa Payment\n")
	sb.WriteString("Number: " + d.MobileNumber + "\n")
	sb.WriteString("Amount: PKR " + d.Amount.String() + "\n")
	sb.WriteString("Reference: " + d.BookingReference)
	return sb.String()
}

// BuildQRCodeURL points at an external QR image service. No request is made
// here; a broken image surfaces only when the client loads it.
func (b LinkBuilder) BuildQRCodeURL(d PaymentDetails) string {
	size := b.QRSize
	if size <= 0 {
		size = DefaultQRSize
	}
	base := b.QRServiceURL
	if base == "" {
		base = DefaultQRServiceURL
	}
	return fmt.Sprintf("%s?size=%dx%d&data=%s", base, size, size, encodeComponent(PaymentText(d)))
}

func (b LinkBuilder) scheme() string {
	if b.Scheme == "" {
		return DefaultScheme
	}
	return b.Scheme
}

// encodeComponent escapes spaces as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
