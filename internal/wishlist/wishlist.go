package wishlist

import (
	"log/slog"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
)

// Set is the session wishlist: products keyed by identity, presence is the
// only state. Entries keep insertion order for display.
type Set struct {
	items  []catalog.Product
	logger *slog.Logger
}

// NewSet creates an empty wishlist.
func NewSet(logger *slog.Logger) *Set {
	return &Set{logger: logger}
}

// Toggle removes the product when present, inserts it otherwise, and
// returns the resulting membership.
func (s *Set) Toggle(p catalog.Product) bool {
	if i := s.indexOf(p.ID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.logger.Info("wishlist item removed", slog.Int64("product_id", p.ID))
		return false
	}

	s.items = append(s.items, p)
	s.logger.Info("wishlist item added", slog.Int64("product_id", p.ID))
	return true
}

// Remove deletes the entry for the given product identifier; absent
// entries are a no-op.
func (s *Set) Remove(productID int64) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.logger.Info("wishlist item removed", slog.Int64("product_id", productID))
}

// Contains reports membership by product identifier.
func (s *Set) Contains(productID int64) bool {
	return s.indexOf(productID) >= 0
}

// Items returns the wishlist in insertion order.
func (s *Set) Items() []catalog.Product {
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of wishlist entries.
func (s *Set) Len() int {
	return len(s.items)
}

func (s *Set) indexOf(productID int64) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}
