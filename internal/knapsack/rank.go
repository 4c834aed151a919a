package knapsack

import "fmt"

// RankFunc orders items for Greedy; higher ranks are considered first.
type RankFunc func(Item) (float64, error)

// ByValue ranks items by their value.
func ByValue(it Item) (float64, error) {
	return it.Value, nil
}

// ByCostReciprocal ranks cheaper items first.
func ByCostReciprocal(it Item) (float64, error) {
	if it.Cost == 0 {
		return 0, fmt.Errorf("%w: %q", ErrDivisionByZero, it.Name)
	}
	return 1 / it.Cost, nil
}

// ByDensity ranks items by value per unit of cost.
func ByDensity(it Item) (float64, error) {
	return it.Density()
}
