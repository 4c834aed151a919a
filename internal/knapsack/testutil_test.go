package knapsack_test

import (
	"math/big"
	"math/rand"

	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
)

func menu() []knapsack.Item {
	names := []string{"wine", "beer", "pizza", "burger", "fries", "cola", "apple", "donut", "cake"}
	values := []float64{89, 90, 95, 100, 90, 79, 50, 10, 12}
	costs := []float64{123, 154, 258, 354, 365, 150, 95, 195, 123}
	catalog, err := knapsack.NewCatalog(names, values, costs)
	if err != nil {
		panic(err)
	}
	return catalog.Items()
}

// bruteForce enumerates every subset and returns the best achievable value.
func bruteForce(items []knapsack.Item, capacity float64) float64 {
	best := 0.0
	for mask := 0; mask < 1<<len(items); mask++ {
		var cost, value float64
		for i, it := range items {
			if mask&(1<<i) != 0 {
				cost += it.Cost
				value += it.Value
			}
		}
		if cost <= capacity && value > best {
			best = value
		}
	}
	return best
}

// randomItems produces integer-valued items so sums stay exact.
func randomItems(rng *rand.Rand, n int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Name:  string(rune('a' + i)),
			Value: float64(rng.Intn(100)),
			Cost:  float64(1 + rng.Intn(60)),
		}
	}
	return items
}

func sums(items []knapsack.Item) (value, cost float64) {
	for _, it := range items {
		value += it.Value
		cost += it.Cost
	}
	return value, cost
}

func names(items []knapsack.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// randomDecimalItems produces costs in tenths, which float64 cannot hold exactly.
func randomDecimalItems(rng *rand.Rand, n int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Name:  string(rune('a' + i)),
			Value: float64(rng.Intn(10)),
			Cost:  float64(1+rng.Intn(9)) / 10,
		}
	}
	return items
}

// ratBruteForce is bruteForce with cost sums taken in exact rational arithmetic.
func ratBruteForce(items []knapsack.Item, capacity float64) float64 {
	limit := new(big.Rat).SetFloat64(capacity)
	best := 0.0
	for mask := 0; mask < 1<<len(items); mask++ {
		cost := new(big.Rat)
		value := 0.0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				cost.Add(cost, new(big.Rat).SetFloat64(it.Cost))
				value += it.Value
			}
		}
		if cost.Cmp(limit) <= 0 && value > best {
			best = value
		}
	}
	return best
}
