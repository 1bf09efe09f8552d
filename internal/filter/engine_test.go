package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
)

func testCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Running Shoe", Description: "Lightweight runner", Category: "Footwear", PriceCents: 3000, Rating: 4.5, Reviews: 500, InStock: true, Tags: []string{"shoe", "sport"}},
		{ID: 2, Name: "Hat", Description: "Wool hat", Category: "Accessories", PriceCents: 1000, Rating: 4.0, Reviews: 80, InStock: true, Tags: []string{"wool"}},
		{ID: 3, Name: "Leather Tote", Description: "Full-grain tote", Category: "Bags", PriceCents: 2000, Rating: 4.8, Reviews: 220, InStock: false, Featured: true, Tags: []string{"leather", catalog.FreeShippingTag}},
	}
}

func productIDs(products []catalog.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestApply_NoCriteriaKeepsCatalogOrder(t *testing.T) {
	got := Apply(testCatalog(), Criteria{})
	assert.Equal(t, []int64{1, 2, 3}, productIDs(got))
}

func TestApply_IsSubsetOfInput(t *testing.T) {
	input := testCatalog()
	got := Apply(input, Criteria{Keyword: "o"})

	byID := make(map[int64]catalog.Product, len(input))
	for _, p := range input {
		byID[p.ID] = p
	}
	for _, p := range got {
		orig, ok := byID[p.ID]
		require.True(t, ok, "product %d fabricated", p.ID)
		assert.Equal(t, orig.Name, p.Name)
	}
}

func TestApply_Deterministic(t *testing.T) {
	c := Criteria{Keyword: "shoe", Sort: SortPriceAsc, InStockOnly: true}
	first := Apply(testCatalog(), c)
	second := Apply(testCatalog(), c)
	assert.Equal(t, first, second)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := testCatalog()
	Apply(input, Criteria{Sort: SortPriceAsc})
	assert.Equal(t, []int64{1, 2, 3}, productIDs(input))
}

func TestApply_KeywordMatchesNameAndTags(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Keyword: "shoe"})
	require.Len(t, got, 1)
	assert.Equal(t, "Running Shoe", got[0].Name)
}

func TestApply_KeywordMatchesDescription(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Keyword: "full-grain"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestApply_KeywordCaseInsensitive(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Keyword: "SHOE"})
	assert.Len(t, got, 1)
}

func TestApply_KeywordNoMatch(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Keyword: "kayak"})
	assert.Empty(t, got)
}

func TestApply_CategorySet(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Categories: []string{"Bags", "Footwear"}})
	assert.Equal(t, []int64{1, 3}, productIDs(got))
}

func TestApply_LegacyCategoryFallback(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Category: "Accessories"})
	assert.Equal(t, []int64{2}, productIDs(got))
}

func TestApply_CategorySetOverridesLegacy(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Categories: []string{"Bags"}, Category: "Accessories"})
	assert.Equal(t, []int64{3}, productIDs(got))
}

func TestApply_PriceRangeInclusiveUpperBound(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "At max", PriceCents: 5000},
		{ID: 2, Name: "Just over", PriceCents: 5100},
		{ID: 3, Name: "At min", PriceCents: 2500},
		{ID: 4, Name: "Under", PriceCents: 2400},
	}

	r, err := ParsePriceRange("25-50")
	require.NoError(t, err)

	got := Apply(products, Criteria{PriceRange: r})
	assert.Equal(t, []int64{1, 3}, productIDs(got))
}

func TestApply_PriceRangeUnboundedMax(t *testing.T) {
	got := Apply(testCatalog(), Criteria{PriceRange: &PriceRange{MinCents: 2000}})
	assert.Equal(t, []int64{1, 3}, productIDs(got))
}

func TestApply_InStockOnly(t *testing.T) {
	got := Apply(testCatalog(), Criteria{InStockOnly: true})
	assert.Equal(t, []int64{1, 2}, productIDs(got))
}

func TestApply_MinRating(t *testing.T) {
	got := Apply(testCatalog(), Criteria{MinRating: 4})
	assert.Len(t, got, 3)

	got = Apply(testCatalog(), Criteria{MinRating: 5})
	assert.Empty(t, got)
}

func TestApply_FeaturedOnly(t *testing.T) {
	got := Apply(testCatalog(), Criteria{FeaturedOnly: true})
	assert.Equal(t, []int64{3}, productIDs(got))
}

func TestApply_FreeShippingSentinel(t *testing.T) {
	got := Apply(testCatalog(), Criteria{FreeShipping: true})
	assert.Equal(t, []int64{3}, productIDs(got))
}

func TestApply_ConflictingFiltersYieldEmpty(t *testing.T) {
	got := Apply(testCatalog(), Criteria{FeaturedOnly: true, InStockOnly: true})
	assert.Empty(t, got)
}

func TestApply_EmptyCatalog(t *testing.T) {
	got := Apply(nil, Criteria{Keyword: "shoe"})
	assert.Empty(t, got)
}

func TestApply_SortPriceAsc(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, PriceCents: 3000},
		{ID: 2, PriceCents: 1000},
		{ID: 3, PriceCents: 2000},
	}
	got := Apply(products, Criteria{Sort: SortPriceAsc})
	assert.Equal(t, []int64{2, 3, 1}, productIDs(got))
}

func TestApply_SortPriceDesc(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, PriceCents: 3000},
		{ID: 2, PriceCents: 1000},
		{ID: 3, PriceCents: 2000},
	}
	got := Apply(products, Criteria{Sort: SortPriceDesc})
	assert.Equal(t, []int64{1, 3, 2}, productIDs(got))
}

func TestApply_SortNewestByID(t *testing.T) {
	products := []catalog.Product{
		{ID: 3}, {ID: 1}, {ID: 2},
	}
	got := Apply(products, Criteria{Sort: SortNewest})
	assert.Equal(t, []int64{3, 2, 1}, productIDs(got))
}

func TestApply_SortRatingDesc(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Sort: SortRatingDesc})
	assert.Equal(t, []int64{3, 1, 2}, productIDs(got))
}

func TestApply_SortReviewsDesc(t *testing.T) {
	got := Apply(testCatalog(), Criteria{Sort: SortReviewsDesc})
	assert.Equal(t, []int64{1, 3, 2}, productIDs(got))
}

func TestApply_SortIsStable(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, PriceCents: 1000},
		{ID: 2, PriceCents: 1000},
		{ID: 3, PriceCents: 1000},
	}
	got := Apply(products, Criteria{Sort: SortPriceAsc})
	assert.Equal(t, []int64{1, 2, 3}, productIDs(got))
}
