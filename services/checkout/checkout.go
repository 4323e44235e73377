package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"venuebook/models"
	"venuebook/services/payment"
	"venuebook/services/venue"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrDirectPaymentRequired means the venue takes bookings only by contacting it directly.
var ErrDirectPaymentRequired = errors.New("direct payment required")

type CheckoutService interface {
	PrepareCheckout(ctx context.Context, venueID string, mobile bool) (*models.Checkout, error)
	RenderQR(ctx context.Context, venueID, reference string) ([]byte, error)
}

// DefaultCheckoutService assembles payment screens. Nothing it produces is persisted.
type DefaultCheckoutService struct {
	Venues     venue.VenueService
	References *payment.ReferenceGenerator
	Links      payment.LinkBuilder
	Logger     *zap.Logger

	disabled map[string]struct{}
}

func NewCheckoutService(venues venue.VenueService, refs *payment.ReferenceGenerator, links payment.LinkBuilder, disabledVenues []string, logger *zap.Logger) *DefaultCheckoutService {
	disabled := make(map[string]struct{}, len(disabledVenues))
	for _, name := range disabledVenues {
		if n := normalizeName(name); n != "" {
			disabled[n] = struct{}{}
		}
	}
	return &DefaultCheckoutService{
		Venues:     venues,
		References: refs,
		Links:      links,
		Logger:     logger,
		disabled:   disabled,
	}
}

// PrepareCheckout generates a fresh reference and the payment artifacts for a
// venue. Landline numbers cannot receive wallet payments, so only the dial
// link is offered for them.
func (s *DefaultCheckoutService) PrepareCheckout(ctx context.Context, venueID string, mobile bool) (*models.Checkout, error) {
	v, err := s.Venues.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if s.IsPaymentDisabled(v.Name) {
		return nil, fmt.Errorf("%w: %s", ErrDirectPaymentRequired, v.Name)
	}

	details := payment.PaymentDetails{
		VenueID:          venueID,
		VenueName:        v.Name,
		Amount:           decimal.NewFromFloat(v.Price),
		MobileNumber:     v.Phone,
		BookingReference: s.References.Generate(venueID),
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	summary := s.Venues.Summarize(*v)
	co := &models.Checkout{
		VenueID:          venueID,
		VenueName:        v.Name,
		Amount:           details.Amount.String(),
		FormattedAmount:  summary.FormattedPrice,
		Category:         summary.Category,
		MobileNumber:     v.Phone,
		BookingReference: details.BookingReference,
		Mobile:           mobile,
		DialLink:         payment.DialLink(details),
	}

	if payment.IsLandlineNumber(v.Phone) {
		co.PaymentMethod = models.PaymentMethodDirect
	} else {
		co.PaymentMethod = models.PaymentMethodEasyPaisa
		co.DeepLink = s.Links.BuildDeepLink(details, mobile)
		co.QRCodeURL = s.Links.BuildQRCodeURL(details)
	}

	s.Logger.Info("checkout prepared",
		zap.String("venueId", venueID),
		zap.String("reference", co.BookingReference),
		zap.String("method", co.PaymentMethod),
		zap.Bool("mobile", mobile),
	)
	return co, nil
}

// RenderQR renders the payment QR code for a reference issued earlier by PrepareCheckout.
func (s *DefaultCheckoutService) RenderQR(ctx context.Context, venueID, reference string) ([]byte, error) {
	v, err := s.Venues.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if s.IsPaymentDisabled(v.Name) {
		return nil, fmt.Errorf("%w: %s", ErrDirectPaymentRequired, v.Name)
	}
	if payment.IsLandlineNumber(v.Phone) {
		return nil, &payment.ValidationError{Field: "mobileNumber", Reason: "landline numbers cannot receive wallet payments"}
	}
	details := payment.PaymentDetails{
		VenueID:          venueID,
		VenueName:        v.Name,
		Amount:           decimal.NewFromFloat(v.Price),
		MobileNumber:     v.Phone,
		BookingReference: strings.ToUpper(strings.TrimSpace(reference)),
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if !payment.ValidReference(details.BookingReference) {
		return nil, &payment.ValidationError{Field: "bookingReference", Reason: "not a booking reference"}
	}
	return payment.RenderQRCode(details, s.Links.QRSize)
}

func (s *DefaultCheckoutService) IsPaymentDisabled(venueName string) bool {
	_, ok := s.disabled[normalizeName(venueName)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
