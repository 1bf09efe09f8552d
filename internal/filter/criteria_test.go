package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
)

func TestParsePriceRange_Empty(t *testing.T) {
	r, err := ParsePriceRange("")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestParsePriceRange_Bounded(t *testing.T) {
	r, err := ParsePriceRange("25-50")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), r.MinCents)
	assert.Equal(t, int64(5000), r.MaxCents)
}

func TestParsePriceRange_OpenEnded(t *testing.T) {
	r, err := ParsePriceRange("200-")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), r.MinCents)
	assert.Zero(t, r.MaxCents)
}

func TestParsePriceRange_Malformed(t *testing.T) {
	for _, bad := range []string{"25", "abc-50", "25-xyz", "50-25", "-5-10"} {
		_, err := ParsePriceRange(bad)
		require.Error(t, err, "range %q should fail", bad)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
}

func TestCriteria_Active(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.True(t, Criteria{Keyword: "shoe"}.Active())
	assert.True(t, Criteria{Sort: SortPriceAsc}.Active())
	assert.True(t, Criteria{MinRating: 4}.Active())
	assert.True(t, Criteria{Categories: []string{"Bags"}}.Active())
}

func TestCriteria_KeyStableAcrossCategoryOrder(t *testing.T) {
	a := Criteria{Categories: []string{"Bags", "Footwear"}}
	b := Criteria{Categories: []string{"Footwear", "Bags"}}
	assert.Equal(t, a.Key(), b.Key())
}

func TestCriteria_KeyChangesWithPredicates(t *testing.T) {
	base := Criteria{Keyword: "shoe"}
	assert.NotEqual(t, base.Key(), Criteria{Keyword: "hat"}.Key())
	assert.NotEqual(t, base.Key(), Criteria{Keyword: "shoe", InStockOnly: true}.Key())
	assert.NotEqual(t, base.Key(), Criteria{Keyword: "shoe", Sort: SortNewest}.Key())
}

func TestCriteria_KeyDistinguishesPriceRange(t *testing.T) {
	a := Criteria{PriceRange: &PriceRange{MinCents: 2500, MaxCents: 5000}}
	b := Criteria{PriceRange: &PriceRange{MinCents: 2500}}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), Criteria{}.Key())
}

func TestCriteria_ChipsEmpty(t *testing.T) {
	assert.Empty(t, Criteria{}.Chips())
}

func TestCriteria_ChipsCoverEachPredicate(t *testing.T) {
	c := Criteria{
		Keyword:      "shoe",
		Categories:   []string{"Bags", "Footwear"},
		PriceRange:   &PriceRange{MinCents: 2500, MaxCents: 5000},
		Sort:         SortPriceAsc,
		InStockOnly:  true,
		MinRating:    4,
		FeaturedOnly: true,
		FreeShipping: true,
	}

	chips := c.Chips()
	require.Len(t, chips, 9)

	types := make(map[string]int)
	for _, chip := range chips {
		types[chip.Type]++
	}
	assert.Equal(t, 1, types[ChipSearch])
	assert.Equal(t, 1, types[ChipPrice])
	assert.Equal(t, 1, types[ChipSort])
	assert.Equal(t, 1, types[ChipStock])
	assert.Equal(t, 1, types[ChipRating])
	assert.Equal(t, 1, types[ChipFeatured])
	assert.Equal(t, 1, types[ChipShipping])
	assert.Equal(t, 2, types[ChipCategories])
}

func TestCriteria_ChipValuesUndoable(t *testing.T) {
	c := Criteria{Keyword: "shoe", Categories: []string{"Bags"}, Sort: SortPriceDesc}

	chips := c.Chips()
	byType := make(map[string]Chip)
	for _, chip := range chips {
		byType[chip.Type] = chip
	}

	assert.Equal(t, "shoe", byType[ChipSearch].Value)
	assert.Equal(t, "Bags", byType[ChipCategories].Value)
	assert.Equal(t, "price-high", byType[ChipSort].Value)
}

func TestPriceRange_String(t *testing.T) {
	assert.Equal(t, "25-50", (&PriceRange{MinCents: 2500, MaxCents: 5000}).String())
	assert.Equal(t, "200-", (&PriceRange{MinCents: 20000}).String())
}
