package filter

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
)

// Sort identifies the active sort order. The zero value keeps catalog order.
type Sort string

// Sort options, matching the storefront's sort selector values.
const (
	SortNone        Sort = ""
	SortPriceAsc    Sort = "price-low"
	SortPriceDesc   Sort = "price-high"
	SortRatingDesc  Sort = "rating"
	SortReviewsDesc Sort = "reviews"
	SortNewest      Sort = "newest"
)

// PriceRange bounds product prices in cents. MaxCents of 0 means unbounded.
// The upper bound is inclusive: a "25-50" range keeps a product at exactly
// 50.00.
type PriceRange struct {
	MinCents int64 `json:"min_cents"`
	MaxCents int64 `json:"max_cents"`
}

// ParsePriceRange parses a "min-max" whole-dollar range string such as
// "25-50" or the open-ended "200-999999" sentinel. An empty string means
// no price filter. The engine itself assumes validated numeric bounds;
// rejecting malformed input is this parser's job.
func ParsePriceRange(s string) (*PriceRange, error) {
	if s == "" {
		return nil, nil
	}

	minPart, maxPart, found := strings.Cut(s, "-")
	if !found {
		return nil, apperrors.InvalidInput(fmt.Sprintf("malformed price range %q", s))
	}

	minDollars, err := strconv.ParseInt(minPart, 10, 64)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("non-numeric price bound %q", minPart))
	}

	r := &PriceRange{MinCents: minDollars * 100}
	if maxPart != "" {
		maxDollars, err := strconv.ParseInt(maxPart, 10, 64)
		if err != nil {
			return nil, apperrors.InvalidInput(fmt.Sprintf("non-numeric price bound %q", maxPart))
		}
		r.MaxCents = maxDollars * 100
	}

	if r.MinCents < 0 || r.MaxCents < 0 || (r.MaxCents != 0 && r.MaxCents < r.MinCents) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid price range %q", s))
	}

	return r, nil
}

// String renders the range back into its "min-max" form.
func (r *PriceRange) String() string {
	if r.MaxCents == 0 {
		return fmt.Sprintf("%d-", r.MinCents/100)
	}
	return fmt.Sprintf("%d-%d", r.MinCents/100, r.MaxCents/100)
}

// Criteria is the full set of active filter and sort parameters. Active
// predicates form a conjunction; the sort applies after filtering.
type Criteria struct {
	// Keyword matches case-insensitively against name, description and tags.
	Keyword string `json:"keyword"`

	// Categories is the multi-select category set. When empty, Category
	// (the legacy single selection) applies instead.
	Categories []string `json:"categories"`
	Category   string   `json:"category"`

	PriceRange *PriceRange `json:"price_range,omitempty"`
	Sort       Sort        `json:"sort"`

	InStockOnly  bool `json:"in_stock_only"`
	MinRating    int  `json:"min_rating"`
	FeaturedOnly bool `json:"featured_only"`
	FreeShipping bool `json:"free_shipping"`
}

// Active reports whether any predicate or sort is set.
func (c Criteria) Active() bool {
	return c.Keyword != "" ||
		len(c.Categories) > 0 ||
		c.Category != "" ||
		c.PriceRange != nil ||
		c.Sort != SortNone ||
		c.InStockOnly ||
		c.MinRating > 0 ||
		c.FeaturedOnly ||
		c.FreeShipping
}

// Key returns a structural hash of the criteria, used to memoize filter
// results. Category order does not affect the key.
func (c Criteria) Key() uint64 {
	h := fnv.New64a()

	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}

	cats := make([]string, len(c.Categories))
	copy(cats, c.Categories)
	sort.Strings(cats)

	write("kw", strings.ToLower(c.Keyword))
	write("cats", strings.Join(cats, "\x1f"))
	write("cat", c.Category)
	if c.PriceRange != nil {
		write("price", strconv.FormatInt(c.PriceRange.MinCents, 10), strconv.FormatInt(c.PriceRange.MaxCents, 10))
	}
	write("sort", string(c.Sort))
	write("stock", strconv.FormatBool(c.InStockOnly))
	write("rating", strconv.Itoa(c.MinRating))
	write("featured", strconv.FormatBool(c.FeaturedOnly))
	write("shipping", strconv.FormatBool(c.FreeShipping))

	return h.Sum64()
}

// Chip filter type identifiers, shared with ClearFilter intents.
const (
	ChipSearch     = "search"
	ChipPrice      = "price"
	ChipSort       = "sort"
	ChipStock      = "stock"
	ChipRating     = "rating"
	ChipFeatured   = "featured"
	ChipShipping   = "shipping"
	ChipCategories = "categories"
)

// Chip is one applied-filter summary entry for chip display. Value carries
// what ClearFilter needs to undo exactly this chip.
type Chip struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Chips returns the applied-filter summary in display order.
func (c Criteria) Chips() []Chip {
	var chips []Chip

	if c.Keyword != "" {
		chips = append(chips, Chip{Type: ChipSearch, Label: fmt.Sprintf("Search: %q", c.Keyword), Value: c.Keyword})
	}
	if c.PriceRange != nil {
		chips = append(chips, Chip{Type: ChipPrice, Label: "Price: " + c.PriceRange.String(), Value: c.PriceRange.String()})
	}
	if c.Sort != SortNone {
		chips = append(chips, Chip{Type: ChipSort, Label: "Sort: " + sortLabel(c.Sort), Value: string(c.Sort)})
	}
	if c.InStockOnly {
		chips = append(chips, Chip{Type: ChipStock, Label: "In Stock Only", Value: "true"})
	}
	if c.MinRating > 0 {
		chips = append(chips, Chip{Type: ChipRating, Label: fmt.Sprintf("Rating: %d+ Stars", c.MinRating), Value: strconv.Itoa(c.MinRating)})
	}
	if c.FeaturedOnly {
		chips = append(chips, Chip{Type: ChipFeatured, Label: "Featured Products", Value: "true"})
	}
	if c.FreeShipping {
		chips = append(chips, Chip{Type: ChipShipping, Label: "Free Shipping", Value: "true"})
	}
	for _, cat := range c.Categories {
		chips = append(chips, Chip{Type: ChipCategories, Label: "Category: " + cat, Value: cat})
	}

	return chips
}

func sortLabel(s Sort) string {
	switch s {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortRatingDesc:
		return "Highest Rated"
	case SortReviewsDesc:
		return "Most Reviews"
	case SortNewest:
		return "Newest First"
	default:
		return "Default"
	}
}
