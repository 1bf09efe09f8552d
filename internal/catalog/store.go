package catalog

import (
	"fmt"

	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
)

// Store holds the immutable product collection for a session.
// It is loaded once at startup and freely shared; all accessors return
// copies so callers cannot disturb catalog order.
type Store struct {
	products []Product
	byID     map[int64]int
}

// NewStore builds a store from an ordered product collection.
// Duplicate identifiers and negative prices are rejected.
func NewStore(products []Product) (*Store, error) {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		if _, ok := byID[p.ID]; ok {
			return nil, apperrors.InvalidInput(fmt.Sprintf("duplicate product id %d", p.ID))
		}
		if p.PriceCents < 0 {
			return nil, apperrors.InvalidInput(fmt.Sprintf("negative price on product %d", p.ID))
		}
		byID[p.ID] = i
	}

	owned := make([]Product, len(products))
	copy(owned, products)

	return &Store{products: owned, byID: byID}, nil
}

// Products returns the catalog in its original order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}

// ByID looks up a product by identifier.
func (s *Store) ByID(id int64) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Categories returns the unique category names in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// CategoryCounts returns the number of products per category.
func (s *Store) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts
}
