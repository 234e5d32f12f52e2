package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("pricing: parameter outside model domain")

	// ErrUnknownOptionType is returned by the strict entry points when a
	// selector is neither a call nor a put.
	ErrUnknownOptionType = errors.New("pricing: unknown option type")
)

// DomainError reports a model parameter that violates its precondition.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("pricing: invalid %s=%g: %s", e.Param, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
