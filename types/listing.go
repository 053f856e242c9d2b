package types

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CatalogPageSize is the fixed number of items per catalog page.
// It is a server-side constant and is never read from the request.
const CatalogPageSize = 24

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortMap is an explicit whitelist from public sort keys to internal column
// names, with a designated default key. It is injected into the builder so
// listings with different sortable columns can share the same plumbing.
// DefaultKey must be present in Fields.
type SortMap struct {
	Fields     map[string]string
	DefaultKey string
}

// Canonicalize maps a public sort key onto itself when whitelisted, and
// onto the default key otherwise. Unknown keys are never forwarded to the
// query engine.
func (m SortMap) Canonicalize(key string) string {
	if _, ok := m.Fields[key]; ok {
		return key
	}
	return m.DefaultKey
}

// Column returns the internal column for a canonical sort key.
func (m SortMap) Column(key string) string {
	return m.Fields[m.Canonicalize(key)]
}

// ListingParams carries the raw, untrusted query parameters of a listing
// request. All fields are optional strings, exactly as they arrive in the
// URL.
type ListingParams struct {
	Search string
	Genre  string
	Sort   string
	Order  string
	Page   string
}

// ParseListingParams extracts listing parameters from the request.
func ParseListingParams(c *gin.Context) ListingParams {
	return ListingParams{
		Search: c.Query("q"),
		Genre:  c.Query("genre"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Page:   c.Query("page"),
	}
}

// QueryDescriptor is the canonical, sanitized form of a listing query.
// SortKey is always a whitelisted public key and SortField its internal
// column; Page is always at least 1. The descriptor is safe to hand to a
// repository as-is.
type QueryDescriptor struct {
	SearchText    string
	GenreFilter   string
	SortKey       string
	SortField     string
	SortDirection SortDirection
	Page          int
	PageSize      int
}

func (d QueryDescriptor) Offset() int { return (d.Page - 1) * d.PageSize }
func (d QueryDescriptor) Limit() int  { return d.PageSize }

// BuildListingQuery canonicalizes raw listing parameters. It is total:
// every malformed or missing value is coerced to a safe default so a
// listing page never fails on a bad query string.
//
// The order flag is descending only for the exact literal "desc"; any other
// spelling (including "DESC") is ascending. A page that does not parse as
// an integer is treated the same as page 0 and coerced to 1.
func BuildListingQuery(p ListingParams, sortMap SortMap) QueryDescriptor {
	direction := SortAsc
	if p.Order == "desc" {
		direction = SortDesc
	}

	page, _ := strconv.Atoi(p.Page)
	if page < 1 {
		page = 1
	}

	key := sortMap.Canonicalize(p.Sort)
	return QueryDescriptor{
		SearchText:    p.Search,
		GenreFilter:   p.Genre,
		SortKey:       key,
		SortField:     sortMap.Fields[key],
		SortDirection: direction,
		Page:          page,
		PageSize:      CatalogPageSize,
	}
}

// Params serializes the descriptor back to raw listing parameters, as used
// when re-building page links. Building a descriptor from its own Params
// with the same sort map yields an identical descriptor.
func (d QueryDescriptor) Params() ListingParams {
	order := ""
	if d.SortDirection == SortDesc {
		order = "desc"
	}
	return ListingParams{
		Search: d.SearchText,
		Genre:  d.GenreFilter,
		Sort:   d.SortKey,
		Order:  order,
		Page:   strconv.Itoa(d.Page),
	}
}
