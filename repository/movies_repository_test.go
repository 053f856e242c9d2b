package repository

import (
	"testing"

	"github.com/knixan/b-movies/types"

	"github.com/stretchr/testify/assert"
)

func TestMovieSortMapWhitelist(t *testing.T) {
	m := MovieSortMap()
	assert.Contains(t, m.Fields, m.DefaultKey)

	d := types.BuildListingQuery(types.ListingParams{Sort: "price"}, m)
	assert.Equal(t, "price_cents", d.SortField)

	// Unknown keys resolve to the default column, never pass through.
	d = types.BuildListingQuery(types.ListingParams{Sort: "id; DROP TABLE movie"}, m)
	assert.Equal(t, "title", d.SortField)
}

func TestOrderClause(t *testing.T) {
	m := MovieSortMap()

	d := types.BuildListingQuery(types.ListingParams{Sort: "year", Order: "desc"}, m)
	assert.Equal(t, "ORDER BY m.release_year DESC, m.id DESC", orderClause(d))

	d = types.BuildListingQuery(types.ListingParams{}, m)
	assert.Equal(t, "ORDER BY m.title ASC, m.id ASC", orderClause(d))
}

func TestPersonSortMapWhitelist(t *testing.T) {
	m := PersonSortMap()
	assert.Contains(t, m.Fields, m.DefaultKey)
	d := types.BuildListingQuery(types.ListingParams{Sort: "nope"}, m)
	assert.Equal(t, "name", d.SortField)
}
