package knapsack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for mismatched catalog inputs and negative capacities.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is returned when a density or cost reciprocal is taken on a zero-cost item.
	ErrDivisionByZero = errors.New("undefined density: item cost is zero")
	// ErrCatalogTooLarge is returned when the exact search is asked to explore too many items.
	ErrCatalogTooLarge = fmt.Errorf("%w: catalog too large for exact search", ErrInvalidArgument)
	// ErrUnknownStrategy is returned by Solver for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("unknown selection strategy")
)
