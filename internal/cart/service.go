package cart

import (
	"fmt"
	"log/slog"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
)

// MaxQuantityPerLine caps a single line's quantity.
const MaxQuantityPerLine = 100

// Ledger implements the business logic for cart mutations. It owns the
// cart for the session; all access goes through its methods.
type Ledger struct {
	cart   Cart
	logger *slog.Logger
}

// NewLedger creates an empty cart ledger.
func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Add puts one unit of the product into the cart: an existing line's
// quantity grows by 1, otherwise a new line with quantity 1 is inserted.
func (l *Ledger) Add(p catalog.Product) error {
	return l.add(p, 1)
}

// AddWithQuantity inserts a new line with the requested quantity. When a
// line already exists it increments by exactly 1, not by qty — the detail
// view has always behaved this way and callers rely on it.
func (l *Ledger) AddWithQuantity(p catalog.Product, qty int) error {
	return l.add(p, qty)
}

func (l *Ledger) add(p catalog.Product, qty int) error {
	if qty < 1 {
		return apperrors.InvalidInput("quantity must be at least 1")
	}
	if qty > MaxQuantityPerLine {
		return apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	if i := l.cart.FindLineIndex(p.ID); i >= 0 {
		if l.cart.Lines[i].Quantity >= MaxQuantityPerLine {
			return apperrors.InvalidInput(fmt.Sprintf("line quantity must not exceed %d", MaxQuantityPerLine))
		}
		l.cart.Lines[i].Quantity++
	} else {
		l.cart.Lines = append(l.cart.Lines, Line{Product: p, Quantity: qty})
	}

	l.logger.Info("item added to cart",
		slog.Int64("product_id", p.ID),
		slog.Int("quantity", qty),
		slog.Int("cart_count", l.cart.Count()),
	)

	return nil
}

// Remove deletes the line for the given product identifier. Removing an
// absent line is a no-op; repeated removes are idempotent.
func (l *Ledger) Remove(productID int64) {
	i := l.cart.FindLineIndex(productID)
	if i < 0 {
		return
	}

	l.cart.Lines = append(l.cart.Lines[:i], l.cart.Lines[i+1:]...)

	l.logger.Info("item removed from cart",
		slog.Int64("product_id", productID),
	)
}

// Clear empties the cart, e.g. after checkout completes.
func (l *Ledger) Clear() {
	l.cart.Lines = nil
	l.logger.Info("cart cleared")
}

// Lines returns a copy of the current cart lines.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.cart.Lines))
	copy(out, l.cart.Lines)
	return out
}

// TotalCents returns the cart total in cents.
func (l *Ledger) TotalCents() int64 {
	return l.cart.TotalCents()
}

// Count returns the badge count (sum of quantities).
func (l *Ledger) Count() int {
	return l.cart.Count()
}
