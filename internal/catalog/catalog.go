// Package catalog serves the static, read-only product list the storefront
// sells. The data ships embedded in the binary; nothing in the service ever
// mutates it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/pricing"
)

//go:embed products.json
var productsJSON []byte

type Catalog struct {
	products   []domain.Product
	categories []string
	byCategory map[string][]domain.Product
	byName     map[string]domain.Product
}

// Load builds the catalog from the embedded product data.
func Load() (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return New(products)
}

// New validates the product list and indexes it by category and name. A
// malformed price or a duplicate name within a category is a hard error:
// catalog data is internal, so bad entries must fail at startup instead of
// degrading to zero inside cart math.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[string][]domain.Product),
		byName:     make(map[string]domain.Product),
	}
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog entry in category %q has no name", p.Category)
		}
		if strings.TrimSpace(p.Category) == "" {
			return nil, fmt.Errorf("catalog entry %q has no category", p.Name)
		}
		if err := pricing.ValidatePrice(p.Price); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", p.Name, err)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("catalog entry %q appears twice", p.Name)
		}
		if _, seen := c.byCategory[p.Category]; !seen {
			c.categories = append(c.categories, p.Category)
		}
		c.products = append(c.products, p)
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
		c.byName[p.Name] = p
	}
	return c, nil
}

// Categories returns category keys in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// All returns every product in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns the products of one category, or ErrNotFound for an
// unknown category key.
func (c *Catalog) ByCategory(key string) ([]domain.Product, error) {
	products, ok := c.byCategory[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}

// ByName looks a product up by its exact name.
func (c *Catalog) ByName(name string) (*domain.Product, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Search returns products whose name or category contains the query,
// case-insensitively, sorted by name. An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
