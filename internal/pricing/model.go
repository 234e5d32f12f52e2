package pricing

import (
	"fmt"

	"github.com/contactkeval/option-pricer/internal/logger"
)

// UnknownOptionPrice is returned by CalculateOptionPrice for a selector that
// names neither a call nor a put.
const UnknownOptionPrice = -1.0

// Model is implemented by every option pricing model.
//
// A model prices from the parameters it was constructed with, so both hooks
// take no arguments. Dispatch by option type lives in CalculateOptionPrice,
// Price and PriceSelector and is shared by all models.
type Model interface {
	CallPrice() float64
	PutPrice() float64
}

// CalculateOptionPrice prices an option selected by its display string.
//
// Parameters:
//   - m: the pricing model
//   - selector: "Call Option" or "Put Option"
//
// Returns:
//
//	The call or put price. Any other selector yields UnknownOptionPrice (-1)
//	and a warning is logged; no error is returned.
func CalculateOptionPrice(m Model, selector string) float64 {
	if CallOption.Matches(selector) {
		return m.CallPrice()
	}
	if PutOption.Matches(selector) {
		return m.PutPrice()
	}
	logger.Warnf("event=unknown_option_type selector=%q price=%v", selector, UnknownOptionPrice)
	return UnknownOptionPrice
}

// Price prices an option of type t with model m.
func Price(m Model, t OptionType) (float64, error) {
	switch t {
	case CallOption:
		return m.CallPrice(), nil
	case PutOption:
		return m.PutPrice(), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownOptionType, int(t))
}

// PriceSelector is the strict counterpart of CalculateOptionPrice: an
// unrecognised selector is reported as ErrUnknownOptionType.
func PriceSelector(m Model, selector string) (float64, error) {
	t, err := ParseOptionType(selector)
	if err != nil {
		return 0, err
	}
	return Price(m, t)
}
