package knapsack

import (
	"fmt"
	"strings"
)

// Strategy names a selection strategy.
type Strategy string

const (
	StrategyValue   Strategy = "value"
	StrategyCost    Strategy = "cost"
	StrategyDensity Strategy = "density"
	StrategyExact   Strategy = "exact"
)

// Strategies lists every supported strategy in report order.
func Strategies() []Strategy {
	return []Strategy{StrategyValue, StrategyCost, StrategyDensity, StrategyExact}
}

// ParseStrategy resolves a case-insensitive strategy name.
func ParseStrategy(raw string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
}

// Solver runs a named strategy over a catalog.
type Solver interface {
	Solve(strategy Strategy, items []Item, capacity float64) (Selection, error)
}

// Option configures the solver returned by New.
type Option func(*solver)

// WithMaxExactItems lowers the catalog size accepted by the exact strategy.
// Values outside (0, MaxExactItems] are ignored.
func WithMaxExactItems(n int) Option {
	return func(s *solver) {
		if n > 0 && n <= MaxExactItems {
			s.maxExactItems = n
		}
	}
}

type solver struct {
	maxExactItems int
}

// New creates a Solver dispatching to Greedy and Exact.
func New(opts ...Option) Solver {
	s := &solver{maxExactItems: MaxExactItems}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *solver) Solve(strategy Strategy, items []Item, capacity float64) (Selection, error) {
	switch strategy {
	case StrategyValue:
		return Greedy(items, capacity, ByValue)
	case StrategyCost:
		return Greedy(items, capacity, ByCostReciprocal)
	case StrategyDensity:
		return Greedy(items, capacity, ByDensity)
	case StrategyExact:
		if len(items) > s.maxExactItems {
			return Selection{}, fmt.Errorf("%w: %d items, limit %d", ErrCatalogTooLarge, len(items), s.maxExactItems)
		}
		return Exact(items, capacity)
	default:
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
