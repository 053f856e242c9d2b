package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func movieSortMap() SortMap {
	return SortMap{
		Fields: map[string]string{
			"title":   "title",
			"price":   "price_cents",
			"year":    "release_year",
			"runtime": "runtime_minutes",
			"created": "created_at",
		},
		DefaultKey: "title",
	}
}

func TestBuildListingQueryDefaults(t *testing.T) {
	d := BuildListingQuery(ListingParams{}, movieSortMap())
	assert.Equal(t, "", d.SearchText)
	assert.Equal(t, "", d.GenreFilter)
	assert.Equal(t, "title", d.SortKey)
	assert.Equal(t, "title", d.SortField)
	assert.Equal(t, SortAsc, d.SortDirection)
	assert.Equal(t, 1, d.Page)
	assert.Equal(t, CatalogPageSize, d.PageSize)
	assert.Equal(t, 0, d.Offset())
	assert.Equal(t, CatalogPageSize, d.Limit())
}

func TestBuildListingQueryPageCoercion(t *testing.T) {
	m := movieSortMap()

	cases := map[string]int{
		"":       1,
		"0":      1,
		"-3":     1,
		"banana": 1,
		"1":      1,
		"2":      2,
		"17":     17,
	}
	for raw, want := range cases {
		d := BuildListingQuery(ListingParams{Page: raw}, m)
		assert.Equal(t, want, d.Page, "page=%q", raw)
		assert.GreaterOrEqual(t, d.Page, 1)
	}

	// A non-numeric page behaves exactly like "0".
	assert.Equal(t,
		BuildListingQuery(ListingParams{Page: "0"}, m),
		BuildListingQuery(ListingParams{Page: "not-a-number"}, m))
}

func TestBuildListingQuerySortWhitelist(t *testing.T) {
	m := movieSortMap()

	d := BuildListingQuery(ListingParams{Sort: "price"}, m)
	assert.Equal(t, "price", d.SortKey)
	assert.Equal(t, "price_cents", d.SortField)

	for _, bad := range []string{"", "rating", "price_cents; DROP TABLE movie", "TITLE"} {
		d := BuildListingQuery(ListingParams{Sort: bad}, m)
		assert.Equal(t, "title", d.SortKey, "sort=%q", bad)
		assert.Equal(t, "title", d.SortField, "sort=%q", bad)
	}
}

func TestBuildListingQueryOrderIsStrict(t *testing.T) {
	m := movieSortMap()

	d := BuildListingQuery(ListingParams{Order: "desc"}, m)
	assert.Equal(t, SortDesc, d.SortDirection)

	for _, other := range []string{"", "DESC", "Desc", "descending", "asc", " desc"} {
		d := BuildListingQuery(ListingParams{Order: other}, m)
		assert.Equal(t, SortAsc, d.SortDirection, "order=%q", other)
	}
}

func TestBuildListingQueryOffset(t *testing.T) {
	d := BuildListingQuery(ListingParams{Page: "3"}, movieSortMap())
	assert.Equal(t, 2*CatalogPageSize, d.Offset())
}

func TestBuildListingQueryRoundTrip(t *testing.T) {
	m := movieSortMap()
	raws := []ListingParams{
		{},
		{Search: "Alien", Genre: "Horror", Sort: "year", Order: "desc", Page: "4"},
		{Search: "zombie", Sort: "bogus", Order: "DESC", Page: "nope"},
		{Genre: "Comedy", Sort: "runtime", Page: "-1"},
	}
	for _, raw := range raws {
		first := BuildListingQuery(raw, m)
		again := BuildListingQuery(first.Params(), m)
		assert.Equal(t, first, again)
	}
}

func TestSortMapCanonicalize(t *testing.T) {
	m := SortMap{
		Fields:     map[string]string{"name": "name", "added": "created_at"},
		DefaultKey: "name",
	}
	assert.Equal(t, "added", m.Canonicalize("added"))
	assert.Equal(t, "name", m.Canonicalize("unknown"))
	assert.Equal(t, "created_at", m.Column("added"))
	assert.Equal(t, "name", m.Column("unknown"))
}
