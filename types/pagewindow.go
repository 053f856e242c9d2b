package types

// DefaultSiblingCount is the number of page links shown on each side of the
// current page before an ellipsis or anchor takes over.
const DefaultSiblingCount = 2

// PageToken is a single element of a pagination control: either a page
// number or an ellipsis standing in for hidden pages.
type PageToken struct {
	Number    int  `json:"number,omitempty"`
	IsCurrent bool `json:"isCurrent,omitempty"`
	Ellipsis  bool `json:"ellipsis,omitempty"`
}

func numberToken(n, current int) PageToken {
	return PageToken{Number: n, IsCurrent: n == current}
}

var ellipsisToken = PageToken{Ellipsis: true}

// PaginationPlan is the full rendering plan for pagination controls.
// Previous/next targets are always valid in-range pages even when the
// corresponding link is disabled.
type PaginationPlan struct {
	TotalPages       int         `json:"totalPages"`
	Tokens           []PageToken `json:"tokens"`
	PreviousTarget   int         `json:"previousTarget"`
	NextTarget       int         `json:"nextTarget"`
	PreviousDisabled bool        `json:"previousDisabled"`
	NextDisabled     bool        `json:"nextDisabled"`
}

// ClampPage forces page into [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageWindow computes the ordered page tokens for a pagination control.
//
// The visible window is [currentPage-siblingCount, currentPage+siblingCount]
// intersected with [1, totalPages]; pages 1 and totalPages are always shown
// as anchors. Whenever two adjacent visible numbers are non-consecutive, a
// single ellipsis stands in for the hidden pages, even when only one page
// is hidden. With one page or none there is nothing to paginate and the
// sequence is empty.
//
// The function is total: negative totalPages or siblingCount are treated
// as 0, and an out-of-range currentPage yields a window at the nearest edge
// with no token marked current.
func PageWindow(totalPages, currentPage, siblingCount int) []PageToken {
	if totalPages <= 1 {
		return nil
	}
	if siblingCount < 0 {
		siblingCount = 0
	}

	anchor := ClampPage(currentPage, totalPages)
	start := anchor - siblingCount
	if start < 1 {
		start = 1
	}
	end := anchor + siblingCount
	if end > totalPages {
		end = totalPages
	}

	tokens := make([]PageToken, 0, end-start+5)
	if start > 1 {
		tokens = append(tokens, numberToken(1, currentPage))
		if start > 2 {
			tokens = append(tokens, ellipsisToken)
		}
	}
	for n := start; n <= end; n++ {
		tokens = append(tokens, numberToken(n, currentPage))
	}
	if end < totalPages {
		if end < totalPages-1 {
			tokens = append(tokens, ellipsisToken)
		}
		tokens = append(tokens, numberToken(totalPages, currentPage))
	}
	return tokens
}

// BuildPaginationPlan derives the complete pagination rendering plan from a
// result count. TotalPages is ceil(totalCount/pageSize); a non-positive
// count yields zero pages with both links disabled but still targeting
// page 1.
func BuildPaginationPlan(totalCount, currentPage, pageSize, siblingCount int) PaginationPlan {
	if pageSize < 1 {
		pageSize = CatalogPageSize
	}
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PaginationPlan{
		TotalPages:       totalPages,
		Tokens:           PageWindow(totalPages, currentPage, siblingCount),
		PreviousTarget:   ClampPage(currentPage-1, totalPages),
		NextTarget:       ClampPage(currentPage+1, totalPages),
		PreviousDisabled: currentPage <= 1,
		NextDisabled:     currentPage >= totalPages,
	}
}
