package knapsack

import (
	"fmt"
	"math"
	"math/big"
)

// budget compares cost sums with a capacity without rounding. A finite
// float64 is mant·2^exp, so scaling every cost and the capacity by the
// smallest exponent turns them into integers that add exactly. Greedy and
// Exact share it so both agree on which selections fit.
type budget struct {
	capacity *big.Int
	costs    []*big.Int
	exp      int
}

func newBudget(items []Item, capacity float64) (budget, error) {
	if !finite(capacity) {
		return budget{}, fmt.Errorf("%w: capacity %v is not finite", ErrInvalidArgument, capacity)
	}

	mants := make([]int64, len(items)+1)
	exps := make([]int, len(items)+1)
	minExp := math.MaxInt
	for i := 0; i <= len(items); i++ {
		f := capacity
		if i < len(items) {
			f = items[i].Cost
			if !finite(f) {
				return budget{}, fmt.Errorf("%w: %q has cost %v", ErrInvalidArgument, items[i].Name, f)
			}
		}
		frac, e := math.Frexp(f)
		mants[i], exps[i] = int64(frac*(1<<53)), e-53
		if mants[i] != 0 && exps[i] < minExp {
			minExp = exps[i]
		}
	}
	if minExp == math.MaxInt {
		minExp = 0
	}

	scale := func(i int) *big.Int {
		v := big.NewInt(mants[i])
		if mants[i] == 0 {
			return v
		}
		return v.Lsh(v, uint(exps[i]-minExp))
	}

	b := budget{
		capacity: scale(len(items)),
		costs:    make([]*big.Int, len(items)),
		exp:      minExp,
	}
	for i := range items {
		b.costs[i] = scale(i)
	}
	return b, nil
}

// sum returns the exact cost of the items at the given indexes.
func (b budget) sum(indexes []int) *big.Int {
	total := new(big.Int)
	for _, idx := range indexes {
		total.Add(total, b.costs[idx])
	}
	return total
}

// toFloat rounds an exact cost to the nearest float64. Rounding is monotone,
// so a sum that fits the capacity still fits after conversion.
func (b budget) toFloat(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	f.SetMantExp(f, b.exp)
	out, _ := f.Float64()
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
