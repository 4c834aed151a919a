package storage

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
)

const maxCatalogItems = 64

// ErrInvalidCatalog indicates the provided catalog violates validation rules.
var ErrInvalidCatalog = errors.New("catalog must contain between 1 and 64 named items with non-negative value and positive cost")

var (
	defaultNames  = []string{"wine", "beer", "pizza", "burger", "fries", "cola", "apple", "donut", "cake"}
	defaultValues = []float64{89, 90, 95, 100, 90, 79, 50, 10, 12}
	defaultCosts  = []float64{123, 154, 258, 354, 365, 150, 95, 195, 123}
)

// Storage provides access to the catalog the selectors run against.
type Storage interface {
	GetCatalog() ([]knapsack.Item, error)
	SetCatalog(items []knapsack.Item) error
}

// MemoryStorage keeps the catalog in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	catalog knapsack.Catalog
}

// NewMemoryStorage initialises storage with the default menu.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		catalog: knapsack.CatalogOf(DefaultMenu()),
	}
}

// DefaultMenu returns a fresh copy of the sample menu.
func DefaultMenu() []knapsack.Item {
	catalog, err := knapsack.NewCatalog(defaultNames, defaultValues, defaultCosts)
	if err != nil {
		panic(err)
	}
	return catalog.Items()
}

// GetCatalog returns a copy of the current catalog in catalog order.
func (s *MemoryStorage) GetCatalog() ([]knapsack.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.Items(), nil
}

// SetCatalog validates and replaces the catalog.
func (s *MemoryStorage) SetCatalog(items []knapsack.Item) error {
	if err := ValidateCatalog(items); err != nil {
		return err
	}

	catalog := knapsack.CatalogOf(items)

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	return nil
}

// ValidateCatalog rejects catalogs the selectors should never see.
func ValidateCatalog(items []knapsack.Item) error {
	if len(items) == 0 || len(items) > maxCatalogItems {
		return fmt.Errorf("%w: got %d items", ErrInvalidCatalog, len(items))
	}
	for i, it := range items {
		switch {
		case strings.TrimSpace(it.Name) == "":
			return fmt.Errorf("%w: item %d has no name", ErrInvalidCatalog, i)
		case !finite(it.Value) || it.Value < 0:
			return fmt.Errorf("%w: %q has value %v", ErrInvalidCatalog, it.Name, it.Value)
		case !finite(it.Cost) || it.Cost <= 0:
			return fmt.Errorf("%w: %q has cost %v", ErrInvalidCatalog, it.Name, it.Cost)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
