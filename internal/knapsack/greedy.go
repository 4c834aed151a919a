package knapsack

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
)

type rankedItem struct {
	index int
	rank  float64
}

// Greedy packs items in strictly descending rank order, keeping every item
// that still fits under maxCost. Items that do not fit are skipped for good.
// Ties keep catalog order. The input slice is never reordered.
func Greedy(items []Item, maxCost float64, rank RankFunc) (Selection, error) {
	if maxCost < 0 {
		return Selection{}, fmt.Errorf("%w: negative capacity %v", ErrInvalidArgument, maxCost)
	}
	if rank == nil {
		return Selection{}, fmt.Errorf("%w: nil rank function", ErrInvalidArgument)
	}
	b, err := newBudget(items, maxCost)
	if err != nil {
		return Selection{}, err
	}

	ranked := make([]rankedItem, len(items))
	for i, it := range items {
		r, err := rank(it)
		if err != nil {
			return Selection{}, fmt.Errorf("greedy rank: %w", err)
		}
		ranked[i] = rankedItem{index: i, rank: r}
	}
	slices.SortStableFunc(ranked, func(a, b rankedItem) int {
		return cmp.Compare(b.rank, a.rank)
	})

	sel := Selection{Items: []Item{}}
	used, next := new(big.Int), new(big.Int)
	for _, ri := range ranked {
		next.Add(used, b.costs[ri.index])
		if next.Cmp(b.capacity) <= 0 {
			used, next = next, used
			it := items[ri.index]
			sel.Items = append(sel.Items, it)
			sel.TotalValue += it.Value
		}
	}
	sel.TotalCost = b.toFloat(used)
	return sel, nil
}
