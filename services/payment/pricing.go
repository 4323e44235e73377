package payment

import (
	"errors"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Category string

const (
	CategoryLow    Category = "Low"
	CategoryMiddle Category = "Middle"
	CategoryHigh   Category = "High"
)

// Thresholds splits prices into three bands: [0, LowMax), [LowMax, MiddleMax)
// and [MiddleMax, inf). Prices below zero fall into Low.
type Thresholds struct {
	LowMax    float64
	MiddleMax float64
}

var DefaultThresholds = Thresholds{LowMax: 50000, MiddleMax: 150000}

var ErrInvalidThresholds = errors.New("category thresholds must satisfy 0 < low < middle")

// Validate rejects bands that would leave Middle empty or inverted.
func (t Thresholds) Validate() error {
	if t.LowMax <= 0 || t.MiddleMax <= t.LowMax {
		return ErrInvalidThresholds
	}
	return nil
}

func (t Thresholds) Categorize(price float64) Category {
	switch {
	case price < t.LowMax:
		return CategoryLow
	case price < t.MiddleMax:
		return CategoryMiddle
	default:
		return CategoryHigh
	}
}

// Categorize uses DefaultThresholds.
func Categorize(price float64) Category {
	return DefaultThresholds.Categorize(price)
}

var (
	priceLocale  = language.MustParse("en-PK")
	pricePrinter = message.NewPrinter(priceLocale)
	pkr          = currency.MustParseISO("PKR")
)

// FormatPrice renders amount in PKR for the en-PK locale, e.g. "Rs 50,000.00".
func FormatPrice(amount float64) string {
	symbol := pricePrinter.Sprint(currency.NarrowSymbol(pkr))
	return symbol + " " + pricePrinter.Sprintf("%.2f", amount)
}
