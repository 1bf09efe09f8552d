package cart

import "github.com/Aashif-Raza/TrendNest/internal/catalog"

// Line is a single cart entry: a product plus its quantity.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the session's cart lines. At most one line exists per
// product identifier.
type Cart struct {
	Lines []Line `json:"lines"`
}

// TotalCents sums price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Product.PriceCents * int64(line.Quantity)
	}
	return total
}

// Count returns the sum of quantities, used for the cart badge.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the line for the given product
// identifier, or -1 when absent.
func (c *Cart) FindLineIndex(productID int64) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
