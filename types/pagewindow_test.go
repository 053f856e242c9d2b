package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(n int) PageToken { return PageToken{Number: n} }
func cur(n int) PageToken { return PageToken{Number: n, IsCurrent: true} }
func gap() PageToken      { return PageToken{Ellipsis: true} }

func TestPageWindowMiddle(t *testing.T) {
	tokens := PageWindow(10, 5, 2)
	assert.Equal(t, []PageToken{
		num(1), gap(), num(3), num(4), cur(5), num(6), num(7), gap(), num(10),
	}, tokens)
}

func TestPageWindowFirstPage(t *testing.T) {
	tokens := PageWindow(5, 1, 2)
	assert.Equal(t, []PageToken{cur(1), num(2), num(3), gap(), num(5)}, tokens)
}

func TestPageWindowLastPage(t *testing.T) {
	tokens := PageWindow(10, 10, 2)
	assert.Equal(t, []PageToken{num(1), gap(), num(8), num(9), cur(10)}, tokens)
}

// An ellipsis stands in for hidden pages even when only one page is hidden
// (gap of exactly one), and disappears entirely once the window touches the
// anchor (gap of zero).
func TestPageWindowGapCollapse(t *testing.T) {
	// Window [2..6] next to both anchors of 7: single hidden page on no side.
	assert.Equal(t, []PageToken{
		num(1), num(2), num(3), cur(4), num(5), num(6), num(7),
	}, PageWindow(7, 4, 2))

	// Window [3..7] of 9: exactly one page hidden on each side.
	assert.Equal(t, []PageToken{
		num(1), gap(), num(3), num(4), cur(5), num(6), num(7), gap(), num(9),
	}, PageWindow(9, 5, 2))
}

func TestPageWindowSmallTotals(t *testing.T) {
	assert.Empty(t, PageWindow(0, 1, 2))
	assert.Empty(t, PageWindow(1, 1, 2))
	assert.Empty(t, PageWindow(-4, 1, 2))

	assert.Equal(t, []PageToken{cur(1), num(2)}, PageWindow(2, 1, 2))
}

func TestPageWindowZeroSiblings(t *testing.T) {
	assert.Equal(t, []PageToken{
		num(1), gap(), cur(5), gap(), num(10),
	}, PageWindow(10, 5, 0))
	// Negative sibling counts clamp to zero.
	assert.Equal(t, PageWindow(10, 5, 0), PageWindow(10, 5, -3))
}

func TestPageWindowOutOfRangeCurrent(t *testing.T) {
	// The window sits at the nearest edge and no token is current.
	tokens := PageWindow(10, 50, 2)
	assert.Equal(t, []PageToken{num(1), gap(), num(8), num(9), num(10)}, tokens)
	for _, tok := range tokens {
		assert.False(t, tok.IsCurrent)
	}
}

func TestPageWindowInvariants(t *testing.T) {
	for totalPages := 2; totalPages <= 30; totalPages++ {
		for current := 1; current <= totalPages; current++ {
			for sibling := 0; sibling <= 3; sibling++ {
				tokens := PageWindow(totalPages, current, sibling)

				assert.Equal(t, 1, tokens[0].Number)
				assert.Equal(t, totalPages, tokens[len(tokens)-1].Number)

				currentCount := 0
				prevNumber := 0
				prevEllipsis := false
				for _, tok := range tokens {
					if tok.Ellipsis {
						assert.False(t, prevEllipsis, "adjacent ellipses")
						prevEllipsis = true
						continue
					}
					if prevNumber != 0 && !prevEllipsis {
						assert.Equal(t, prevNumber+1, tok.Number,
							"non-consecutive numbers without ellipsis (total=%d current=%d sibling=%d)",
							totalPages, current, sibling)
					}
					if tok.IsCurrent {
						currentCount++
						assert.Equal(t, current, tok.Number)
					}
					prevNumber = tok.Number
					prevEllipsis = false
				}
				assert.Equal(t, 1, currentCount)
			}
		}
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 10))
	assert.Equal(t, 1, ClampPage(-5, 10))
	assert.Equal(t, 10, ClampPage(11, 10))
	assert.Equal(t, 7, ClampPage(7, 10))
	// Zero or negative totals clamp to [1,1].
	assert.Equal(t, 1, ClampPage(5, 0))
	assert.Equal(t, 1, ClampPage(5, -2))

	for page := -3; page <= 15; page++ {
		for total := -2; total <= 12; total++ {
			got := ClampPage(page, total)
			assert.GreaterOrEqual(t, got, 1)
			upper := total
			if upper < 1 {
				upper = 1
			}
			assert.LessOrEqual(t, got, upper)
		}
	}
}

func TestBuildPaginationPlan(t *testing.T) {
	// 100 items at 24/page -> 5 pages.
	plan := BuildPaginationPlan(100, 3, 24, 2)
	assert.Equal(t, 5, plan.TotalPages)
	assert.Equal(t, 2, plan.PreviousTarget)
	assert.Equal(t, 4, plan.NextTarget)
	assert.False(t, plan.PreviousDisabled)
	assert.False(t, plan.NextDisabled)

	// Exact multiple does not add a trailing page.
	assert.Equal(t, 4, BuildPaginationPlan(96, 1, 24, 2).TotalPages)
}

func TestBuildPaginationPlanSinglePage(t *testing.T) {
	plan := BuildPaginationPlan(10, 1, 24, 2)
	assert.Equal(t, 1, plan.TotalPages)
	assert.Empty(t, plan.Tokens)
	assert.True(t, plan.PreviousDisabled)
	assert.True(t, plan.NextDisabled)
	assert.Equal(t, 1, plan.PreviousTarget)
	assert.Equal(t, 1, plan.NextTarget)
}

func TestBuildPaginationPlanEmpty(t *testing.T) {
	plan := BuildPaginationPlan(0, 1, 24, 2)
	assert.Equal(t, 0, plan.TotalPages)
	assert.Empty(t, plan.Tokens)
	// Disabled links still resolve to a valid target.
	assert.Equal(t, 1, plan.PreviousTarget)
	assert.Equal(t, 1, plan.NextTarget)
	assert.True(t, plan.PreviousDisabled)
	assert.True(t, plan.NextDisabled)

	// Negative counts behave like zero.
	assert.Equal(t, plan, BuildPaginationPlan(-7, 1, 24, 2))
}

func TestBuildPaginationPlanEdges(t *testing.T) {
	first := BuildPaginationPlan(200, 1, 24, 2)
	assert.True(t, first.PreviousDisabled)
	assert.False(t, first.NextDisabled)
	assert.Equal(t, 1, first.PreviousTarget)
	assert.Equal(t, 2, first.NextTarget)

	last := BuildPaginationPlan(200, first.TotalPages, 24, 2)
	assert.False(t, last.PreviousDisabled)
	assert.True(t, last.NextDisabled)
	assert.Equal(t, last.TotalPages, last.NextTarget)
}
