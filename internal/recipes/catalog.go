package recipes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrUnavailable is returned by consumers that need the catalog when it
// failed to load at startup.
var ErrUnavailable = errors.New("recipe configuration unavailable")

type Ingredient struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Recipe struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Catalog maps menu item keys (e.g. "burger_sales") to their recipes.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	recipes map[string]Recipe
	keys    []string
}

// --------------------------------------------------
// Load catalog from JSON file
// --------------------------------------------------
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes file: %w", err)
	}

	var raw map[string]Recipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse recipes file: %w", err)
	}

	return New(raw)
}

// New validates the recipe set and builds an immutable catalog from it.
func New(raw map[string]Recipe) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, errors.New("recipes file contains no recipes")
	}

	keys := make([]string, 0, len(raw))
	for key, recipe := range raw {
		if recipe.Name == "" {
			return nil, fmt.Errorf("recipe %q has no name", key)
		}
		for _, ing := range recipe.Ingredients {
			// A zero or negative per-unit amount would corrupt the
			// producible-quantity calculation downstream.
			if ing.Amount <= 0 {
				return nil, fmt.Errorf(
					"recipe %q: ingredient %q has non-positive amount %v",
					key, ing.Item, ing.Amount,
				)
			}
			if ing.Item == "" {
				return nil, fmt.Errorf("recipe %q has an ingredient without a name", key)
			}
		}
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return &Catalog{recipes: raw, keys: keys}, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (c *Catalog) Recipe(menuKey string) (Recipe, bool) {
	r, ok := c.recipes[menuKey]
	return r, ok
}

// Keys returns the menu item keys in sorted order. The order is fixed at
// load time so every consumer iterates the catalog identically.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}
