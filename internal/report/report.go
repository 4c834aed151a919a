// Package report renders selection results as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
)

// GreedyLabels maps greedy strategies to the ordering named in report headers.
var GreedyLabels = map[knapsack.Strategy]string{
	knapsack.StrategyValue:   "values",
	knapsack.StrategyCost:    "cost",
	knapsack.StrategyDensity: "density",
}

// FormatItem renders an item as "name: <value, cost>".
func FormatItem(it knapsack.Item) string {
	return it.Name + ": <" + formatNumber(it.Value) + ", " + formatNumber(it.Cost) + ">"
}

// Greedy writes the outcome of one greedy run.
func Greedy(w io.Writer, label string, capacity float64, sel knapsack.Selection) error {
	if _, err := fmt.Fprintf(w, "Use greedy by %s to allocate %s calories\n", label, formatNumber(capacity)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total value of items taken = %s\n", formatNumber(sel.TotalValue)); err != nil {
		return err
	}
	return writeItems(w, sel.Items)
}

// Exact writes the outcome of the exhaustive search.
func Exact(w io.Writer, capacity float64, sel knapsack.Selection, printItems bool) error {
	if _, err := fmt.Fprintf(w, "Use search tree to allocate %s calories\n", formatNumber(capacity)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total value of items taken = %s\n", formatNumber(sel.TotalValue)); err != nil {
		return err
	}
	if !printItems {
		return nil
	}
	return writeItems(w, sel.Items)
}

func writeItems(w io.Writer, items []knapsack.Item) error {
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "    %s\n", FormatItem(it)); err != nil {
			return err
		}
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
