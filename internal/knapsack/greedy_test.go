package knapsack_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
)

func TestGreedy_Menu750(t *testing.T) {
	tests := []struct {
		name      string
		rank      knapsack.RankFunc
		wantValue float64
		wantNames []string
	}{
		{"ByValue", knapsack.ByValue, 284, []string{"burger", "pizza", "wine"}},
		{"ByCostReciprocal", knapsack.ByCostReciprocal, 320, []string{"apple", "wine", "cake", "cola", "beer"}},
		{"ByDensity", knapsack.ByDensity, 320, []string{"wine", "beer", "cola", "apple", "cake"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := knapsack.Greedy(menu(), 750, tc.rank)
			require.NoError(t, err)
			require.Equal(t, tc.wantValue, sel.TotalValue)
			require.Equal(t, tc.wantNames, names(sel.Items))
			require.LessOrEqual(t, sel.TotalCost, 750.0)
		})
	}
}

func TestGreedy_DoesNotReorderInput(t *testing.T) {
	items := menu()
	_, err := knapsack.Greedy(items, 750, knapsack.ByDensity)
	require.NoError(t, err)
	require.Equal(t, menu(), items)
}

func TestGreedy_TiesKeepCatalogOrder(t *testing.T) {
	items := []knapsack.Item{
		{Name: "first", Value: 10, Cost: 5},
		{Name: "second", Value: 10, Cost: 5},
		{Name: "third", Value: 10, Cost: 5},
	}
	sel, err := knapsack.Greedy(items, 10, knapsack.ByValue)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, names(sel.Items))
}

func TestGreedy_SkipsWithoutBacktracking(t *testing.T) {
	items := []knapsack.Item{
		{Name: "big", Value: 10, Cost: 6},
		{Name: "mid", Value: 9, Cost: 5},
		{Name: "small", Value: 8, Cost: 4},
	}
	sel, err := knapsack.Greedy(items, 10, knapsack.ByValue)
	require.NoError(t, err)
	require.Equal(t, []string{"big", "small"}, names(sel.Items))
	require.Equal(t, 18.0, sel.TotalValue)
	require.Equal(t, 10.0, sel.TotalCost)
}

func TestGreedy_Deterministic(t *testing.T) {
	first, err := knapsack.Greedy(menu(), 500, knapsack.ByCostReciprocal)
	require.NoError(t, err)
	second, err := knapsack.Greedy(menu(), 500, knapsack.ByCostReciprocal)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGreedy_EdgeCases(t *testing.T) {
	sel, err := knapsack.Greedy(nil, 100, knapsack.ByValue)
	require.NoError(t, err)
	require.Empty(t, sel.Items)
	require.Zero(t, sel.TotalValue)

	sel, err = knapsack.Greedy(menu(), 0, knapsack.ByValue)
	require.NoError(t, err)
	require.Empty(t, sel.Items)
	require.Zero(t, sel.TotalValue)

	sel, err = knapsack.Greedy([]knapsack.Item{{Name: "huge", Value: 5, Cost: 11}}, 10, knapsack.ByValue)
	require.NoError(t, err)
	require.Empty(t, sel.Items)
	require.Zero(t, sel.TotalValue)
}

func TestGreedy_Errors(t *testing.T) {
	_, err := knapsack.Greedy(menu(), -1, knapsack.ByValue)
	require.ErrorIs(t, err, knapsack.ErrInvalidArgument)

	_, err = knapsack.Greedy(menu(), 10, nil)
	require.ErrorIs(t, err, knapsack.ErrInvalidArgument)

	withFree := append(menu(), knapsack.Item{Name: "water", Value: 1, Cost: 0})
	_, err = knapsack.Greedy(withFree, 750, knapsack.ByCostReciprocal)
	require.ErrorIs(t, err, knapsack.ErrDivisionByZero)
	require.Equal(t, 1, strings.Count(err.Error(), "water"), err.Error())

	_, err = knapsack.Greedy(withFree, 750, knapsack.ByDensity)
	require.ErrorIs(t, err, knapsack.ErrDivisionByZero)

	_, err = knapsack.Greedy(menu(), math.NaN(), knapsack.ByValue)
	require.ErrorIs(t, err, knapsack.ErrInvalidArgument)
}

func TestGreedy_DecimalCostsFillCapacityExactly(t *testing.T) {
	items := []knapsack.Item{
		{Name: "quarter", Value: 3, Cost: 0.25},
		{Name: "half", Value: 2, Cost: 0.5},
		{Name: "eighth", Value: 1, Cost: 0.125},
	}
	sel, err := knapsack.Greedy(items, 0.875, knapsack.ByValue)
	require.NoError(t, err)
	require.Equal(t, []string{"quarter", "half", "eighth"}, names(sel.Items))
	require.Equal(t, 0.875, sel.TotalCost)
}
