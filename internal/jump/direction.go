package jump

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"leapview/internal/domain"
)

// Direction selects the ordering and landing strategy of a session
type Direction int

const (
	Unidirectional Direction = iota
	Bidirectional
)

func (d Direction) String() string {
	if d == Bidirectional {
		return "bidirectional"
	}
	return "unidirectional"
}

// Reach decides whether a selection-extending jump includes the match
type Reach int

const (
	ReachInclusive Reach = iota
	ReachExclusive
	// ReachBeyond stops just past the match. Bidirectional sessions treat
	// it as ReachExclusive.
	ReachBeyond
)

// Landing adjusts where the cursor ends up relative to a match when a jump
// extends a selection or feeds an operator
type Landing int

const (
	// InclusiveBackward lands on the first character of the match
	InclusiveBackward Landing = iota
	// InclusiveForward lands on the last character of the match
	InclusiveForward
	// ExclusiveBackward lands one character before the match, wrapping to
	// the end of the previous line when the match starts a line
	ExclusiveBackward
	// ExclusiveForward lands one character past the match
	ExclusiveForward
)

func (l Landing) String() string {
	switch l {
	case InclusiveBackward:
		return "inclusive-backward"
	case InclusiveForward:
		return "inclusive-forward"
	case ExclusiveBackward:
		return "exclusive-backward"
	case ExclusiveForward:
		return "exclusive-forward"
	default:
		return "unknown"
	}
}

// landingFor picks the landing for a target on the given side of the cursor.
// Moving forward the selection has to grow over the match (inclusive) or
// stop short of it (exclusive); moving backward it is the other way round.
func landingFor(side Side, reach Reach) Landing {
	switch {
	case side == SideAfter && reach == ReachInclusive:
		return InclusiveForward
	case side == SideAfter:
		return ExclusiveBackward
	case reach == ReachInclusive:
		return InclusiveBackward
	default:
		return ExclusiveForward
	}
}

// forwardLanding picks the landing for a unidirectional selection jump
func forwardLanding(reach Reach) Landing {
	switch reach {
	case ReachExclusive:
		return ExclusiveBackward
	case ReachBeyond:
		return ExclusiveForward
	default:
		return InclusiveForward
	}
}

// Land applies a landing to a match span
func Land(l Landing, span domain.Span, text TextSource) domain.Position {
	switch l {
	case InclusiveForward:
		col := span.End.Col - 1
		if n := text.LineLength(span.Start.Line); col > n-1 {
			col = n - 1
		}
		if col < span.Start.Col {
			col = span.Start.Col
		}
		return domain.Position{Line: span.Start.Line, Col: col}

	case ExclusiveBackward:
		if span.Start.Col > 0 {
			return domain.Position{Line: span.Start.Line, Col: span.Start.Col - 1}
		}
		if span.Start.Line == 0 {
			return span.Start
		}
		prev := span.Start.Line - 1
		return domain.Position{Line: prev, Col: text.LineLength(prev)}

	case ExclusiveForward:
		return span.End

	default:
		return span.Start
	}
}

// sidedMatch is a match tagged with the side of the cursor it was found on
type sidedMatch struct {
	domain.Match
	Side Side
}

// OrderBidirectional splits matches into the before-cursor and after-cursor
// sides, each nearest first, groups them by matched text, and interleaves
// each group one-before, one-after so both directions get short labels.
// Groups are emitted in order of their nearest member. With fold set, text
// differing only in case shares a group.
func OrderBidirectional(matches []domain.Match, cursor domain.Position, fold bool) []sidedMatch {
	type sides struct {
		before []sidedMatch
		after  []sidedMatch
	}

	var before, after []domain.Match
	for _, m := range matches {
		if m.Span.Start.Before(cursor) {
			before = append(before, m)
		} else {
			after = append(after, m)
		}
	}
	// scan order is ascending, so the nearest before-match is the last one
	for i, j := 0, len(before)-1; i < j; i, j = i+1, j-1 {
		before[i], before[j] = before[j], before[i]
	}

	groups := linkedhashmap.New()
	add := func(m domain.Match, side Side) {
		key := m.Text
		if fold {
			key = strings.ToLower(key)
		}
		v, ok := groups.Get(key)
		if !ok {
			v = &sides{}
			groups.Put(key, v)
		}
		g := v.(*sides)
		if side == SideBefore {
			g.before = append(g.before, sidedMatch{Match: m, Side: SideBefore})
		} else {
			g.after = append(g.after, sidedMatch{Match: m, Side: SideAfter})
		}
	}
	// walk both sides nearest-first so group order follows proximity
	for i := 0; i < len(before) || i < len(after); i++ {
		if i < len(before) {
			add(before[i], SideBefore)
		}
		if i < len(after) {
			add(after[i], SideAfter)
		}
	}

	ordered := make([]sidedMatch, 0, len(matches))
	for _, v := range groups.Values() {
		g := v.(*sides)
		ordered = append(ordered, interleave(g.before, g.after)...)
	}
	return ordered
}

// interleave takes one from a, one from b, alternating, then drains the rest
func interleave[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i := 0
	for ; i < len(a) && i < len(b); i++ {
		out = append(out, a[i], b[i])
	}
	out = append(out, a[i:]...)
	out = append(out, b[i:]...)
	return out
}
