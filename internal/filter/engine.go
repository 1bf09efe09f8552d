package filter

import (
	"sort"
	"strings"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
)

// Apply derives the displayed product subset from the catalog under the
// given criteria. It is pure: inputs are never mutated and identical
// criteria always yield identical output. Predicates are conjunctive and
// run in a fixed order; the sort runs last on a copy of the filtered
// sequence. An empty result is a valid state, not an error.
func Apply(products []catalog.Product, c Criteria) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))

	keyword := strings.ToLower(c.Keyword)

	for _, p := range products {
		if !matches(p, c, keyword) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, c.Sort)

	return filtered
}

// matches checks a single product against every active predicate.
func matches(p catalog.Product, c Criteria, keyword string) bool {
	// Category: the multi-select set wins; the legacy single selection is
	// the fallback when the set is empty.
	if len(c.Categories) > 0 {
		if !containsString(c.Categories, p.Category) {
			return false
		}
	} else if c.Category != "" && p.Category != c.Category {
		return false
	}

	if keyword != "" && !matchesKeyword(p, keyword) {
		return false
	}

	if c.PriceRange != nil {
		if p.PriceCents < c.PriceRange.MinCents {
			return false
		}
		if c.PriceRange.MaxCents != 0 && p.PriceCents > c.PriceRange.MaxCents {
			return false
		}
	}

	if c.InStockOnly && !p.InStock {
		return false
	}

	if c.MinRating > 0 && p.Rating < float64(c.MinRating) {
		return false
	}

	if c.FeaturedOnly && !p.Featured {
		return false
	}

	if c.FreeShipping && !p.FreeShipping() {
		return false
	}

	return true
}

// matchesKeyword does a case-insensitive substring match against the
// product name, description, or any tag.
func matchesKeyword(p catalog.Product, keyword string) bool {
	if strings.Contains(strings.ToLower(p.Name), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), keyword) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}

// sortProducts stably reorders the filtered sequence in place. SortNone
// preserves catalog order. "Newest" uses the identifier as a monotonic
// insertion proxy.
func sortProducts(products []catalog.Product, by Sort) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortReviewsDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	default:
		// Keep catalog order.
	}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
