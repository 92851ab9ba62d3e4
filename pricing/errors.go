package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingParameter is returned when a required input is absent or not finite.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidArgument is returned for an option, barrier or position
	// value outside the recognized set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericalDomain is returned when an input lies outside the domain
	// of a closed-form formula (zero volatility, zero maturity, ...).
	ErrNumericalDomain = errors.New("numerical domain")
)

type field struct {
	name  string
	value float64
}

// requireFinite fails with ErrMissingParameter on the first NaN or Inf field.
func requireFinite(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s", ErrMissingParameter, f.name)
		}
	}
	return nil
}

func requirePositive(fields ...field) error {
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrNumericalDomain, f.name, f.value)
		}
	}
	return nil
}
