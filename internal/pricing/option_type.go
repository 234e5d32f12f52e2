package pricing

import "fmt"

// OptionType identifies the side of a European option.
type OptionType int

const (
	CallOption OptionType = iota // CallOption is the right to buy at the strike.
	PutOption                    // PutOption is the right to sell at the strike.
)

// Display strings double as the selector values accepted by CalculateOptionPrice.
const (
	callOptionValue = "Call Option"
	putOptionValue  = "Put Option"
)

// String returns the display string of the option type.
func (t OptionType) String() string {
	switch t {
	case CallOption:
		return callOptionValue
	case PutOption:
		return putOptionValue
	default:
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
}

// Matches reports whether the raw selector s equals the display string of t.
func (t OptionType) Matches(s string) bool {
	return t.valid() && s == t.String()
}

func (t OptionType) valid() bool {
	return t == CallOption || t == PutOption
}

// ParseOptionType converts a raw selector into an OptionType.
// Only the exact display strings are recognised.
func ParseOptionType(s string) (OptionType, error) {
	switch s {
	case callOptionValue:
		return CallOption, nil
	case putOptionValue:
		return PutOption, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOptionType, s)
}

func (t OptionType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOptionType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *OptionType) UnmarshalText(b []byte) error {
	v, err := ParseOptionType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
