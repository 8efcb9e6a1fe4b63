package jump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leapview/internal/domain"
)

func TestInterleave(t *testing.T) {
	assert.Equal(t, []int{1, 10, 2, 20, 3, 4}, interleave([]int{1, 2, 3, 4}, []int{10, 20}))
	assert.Equal(t, []int{10, 20}, interleave(nil, []int{10, 20}))
	assert.Empty(t, interleave[int](nil, nil))
}

func TestOrderBidirectionalInterleavesNearestFirst(t *testing.T) {
	// cursor sits between the second and third "ab"
	h := newFakeHost("ab ab | ab ab ab")
	matches := FindMatches(h, "ab", false, h.visible)
	require.Len(t, matches, 5)

	ordered := OrderBidirectional(matches, pos(0, 6), false)
	cols := make([]int, len(ordered))
	sides := make([]Side, len(ordered))
	for i, m := range ordered {
		cols[i] = m.Span.Start.Col
		sides[i] = m.Side
	}
	assert.Equal(t, []int{3, 8, 0, 11, 14}, cols)
	assert.Equal(t, []Side{SideBefore, SideAfter, SideBefore, SideAfter, SideAfter}, sides)
}

func TestOrderBidirectionalGroupsByText(t *testing.T) {
	matches := []domain.Match{
		{Span: span(0, 0, 2), Text: "Ab"},
		{Span: span(0, 3, 5), Text: "ab"},
		{Span: span(0, 10, 12), Text: "ab"},
		{Span: span(0, 13, 15), Text: "Ab"},
	}
	ordered := OrderBidirectional(matches, pos(0, 8), false)

	texts := make([]string, len(ordered))
	for i, m := range ordered {
		texts[i] = m.Text
	}
	// "ab" owns the nearest match on both sides, so its group comes first
	assert.Equal(t, []string{"ab", "ab", "Ab", "Ab"}, texts)
	assert.Equal(t, 3, ordered[0].Span.Start.Col)
	assert.Equal(t, 10, ordered[1].Span.Start.Col)
}

func TestLandingFor(t *testing.T) {
	assert.Equal(t, InclusiveForward, landingFor(SideAfter, ReachInclusive))
	assert.Equal(t, ExclusiveBackward, landingFor(SideAfter, ReachExclusive))
	assert.Equal(t, InclusiveBackward, landingFor(SideBefore, ReachInclusive))
	assert.Equal(t, ExclusiveForward, landingFor(SideBefore, ReachExclusive))
}

func TestLand(t *testing.T) {
	h := newFakeHost("first line\nab cd")

	match := span(1, 3, 5)
	assert.Equal(t, pos(1, 3), Land(InclusiveBackward, match, h))
	assert.Equal(t, pos(1, 4), Land(InclusiveForward, match, h))
	assert.Equal(t, pos(1, 2), Land(ExclusiveBackward, match, h))
	assert.Equal(t, pos(1, 5), Land(ExclusiveForward, match, h))
}

func TestLandExclusiveBackwardWrapsToPreviousLine(t *testing.T) {
	h := newFakeHost("first line\nab cd")
	assert.Equal(t, pos(0, 10), Land(ExclusiveBackward, span(1, 0, 2), h))
	assert.Equal(t, pos(0, 0), Land(ExclusiveBackward, span(0, 0, 2), h))
}

func TestLandingStrings(t *testing.T) {
	assert.Equal(t, "exclusive-backward", ExclusiveBackward.String())
	assert.Equal(t, "bidirectional", Bidirectional.String())
	assert.Equal(t, "before", SideBefore.String())
}

func TestOrderBidirectionalFoldsCaseWhenAsked(t *testing.T) {
	matches := []domain.Match{
		{Span: span(0, 0, 2), Text: "Ab"},
		{Span: span(0, 3, 5), Text: "ab"},
		{Span: span(0, 10, 12), Text: "ab"},
		{Span: span(0, 13, 15), Text: "Ab"},
	}
	ordered := OrderBidirectional(matches, pos(0, 8), true)

	cols := make([]int, len(ordered))
	for i, m := range ordered {
		cols[i] = m.Span.Start.Col
	}
	// one group, so the sides alternate across both spellings
	assert.Equal(t, []int{3, 10, 0, 13}, cols)
}

func TestForwardLanding(t *testing.T) {
	assert.Equal(t, InclusiveForward, forwardLanding(ReachInclusive))
	assert.Equal(t, ExclusiveBackward, forwardLanding(ReachExclusive))
	assert.Equal(t, ExclusiveForward, forwardLanding(ReachBeyond))
}
