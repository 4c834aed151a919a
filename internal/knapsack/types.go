package knapsack

import "fmt"

// Item is a single catalog entry. Name is display only and need not be unique.
type Item struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Cost  float64 `json:"cost" yaml:"cost"`
}

// Density returns value per unit of cost.
func (it Item) Density() (float64, error) {
	if it.Cost == 0 {
		return 0, fmt.Errorf("%w: %q", ErrDivisionByZero, it.Name)
	}
	return it.Value / it.Cost, nil
}

// Catalog is an immutable, ordered sequence of items.
type Catalog struct {
	items []Item
}

// NewCatalog builds a catalog from index-aligned name, value and cost lists.
func NewCatalog(names []string, values, costs []float64) (Catalog, error) {
	if len(names) != len(values) || len(names) != len(costs) {
		return Catalog{}, fmt.Errorf("%w: catalog lists differ in length (names=%d values=%d costs=%d)",
			ErrInvalidArgument, len(names), len(values), len(costs))
	}

	items := make([]Item, len(names))
	for i := range names {
		items[i] = Item{Name: names[i], Value: values[i], Cost: costs[i]}
	}
	return Catalog{items: items}, nil
}

// CatalogOf wraps a copy of items.
func CatalogOf(items []Item) Catalog {
	return Catalog{items: cloneItems(items)}
}

// Items returns a copy of the catalog entries in catalog order.
func (c Catalog) Items() []Item {
	return cloneItems(c.items)
}

// Len reports the number of items.
func (c Catalog) Len() int {
	return len(c.items)
}

// Selection is the outcome of a selector. For Greedy, Items follow selection
// order; for Exact, Items form a set and are reported in catalog order.
type Selection struct {
	Items      []Item
	TotalValue float64
	TotalCost  float64
}

func cloneItems(src []Item) []Item {
	out := make([]Item, len(src))
	copy(out, src)
	return out
}
