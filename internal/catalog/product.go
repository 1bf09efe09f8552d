package catalog

// FreeShippingTag is the sentinel tag marking products that ship free.
const FreeShippingTag = "free shipping"

// Product is a single catalog entry. Products are immutable for the
// lifetime of a session; identifiers are unique across the catalog and
// grow monotonically with insertion order.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price_cents"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	InStock     bool     `json:"in_stock"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
}

// HasTag reports whether the product carries the given tag exactly.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FreeShipping reports whether the product carries the free-shipping sentinel.
func (p Product) FreeShipping() bool {
	return p.HasTag(FreeShippingTag)
}
