package knapsack

import (
	"fmt"
	"math/big"
)

// MaxExactItems caps the catalog size accepted by Exact. Recursion depth equals
// the catalog size and the search visits up to 2^n leaves.
const MaxExactItems = 40

// Exact returns an optimal selection with total cost at most avail by
// exploring every include/exclude decision. When taking an item ties with
// leaving it out, the item is left out.
func Exact(items []Item, avail float64) (Selection, error) {
	if avail < 0 {
		return Selection{}, fmt.Errorf("%w: negative capacity %v", ErrInvalidArgument, avail)
	}
	if len(items) > MaxExactItems {
		return Selection{}, fmt.Errorf("%w: %d items, limit %d", ErrCatalogTooLarge, len(items), MaxExactItems)
	}
	b, err := newBudget(items, avail)
	if err != nil {
		return Selection{}, err
	}

	s := &search{items: items, budget: b, used: make([]big.Int, len(items)+1)}
	value, taken := s.solve(0)

	sel := Selection{
		Items:      make([]Item, 0, len(taken)),
		TotalValue: value,
		TotalCost:  b.toFloat(b.sum(taken)),
	}
	for _, idx := range taken {
		sel.Items = append(sel.Items, items[idx])
	}
	return sel, nil
}

type search struct {
	items  []Item
	budget budget
	// used[i] is the exact cost taken from items[:i] on the current path.
	used []big.Int
}

// solve considers items[i:] and returns the best value together with the
// chosen indexes in ascending order.
func (s *search) solve(i int) (float64, []int) {
	if i == len(s.items) || s.used[i].Cmp(s.budget.capacity) == 0 {
		return 0, nil
	}

	head := s.items[i]
	next := &s.used[i+1]
	next.Add(&s.used[i], s.budget.costs[i])
	if next.Cmp(s.budget.capacity) > 0 {
		next.Set(&s.used[i])
		return s.solve(i + 1)
	}

	withValue, withTaken := s.solve(i + 1)
	withValue += head.Value
	next.Set(&s.used[i])
	withoutValue, withoutTaken := s.solve(i + 1)

	if withValue > withoutValue {
		taken := make([]int, 0, len(withTaken)+1)
		taken = append(taken, i)
		return withValue, append(taken, withTaken...)
	}
	return withoutValue, withoutTaken
}
