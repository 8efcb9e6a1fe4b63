package jump

import "leapview/internal/domain"

// Side says where a marker sits relative to the cursor at trigger time
type Side int

const (
	SideAfter Side = iota
	SideBefore
)

func (s Side) String() string {
	if s == SideBefore {
		return "before"
	}
	return "after"
}

// Marker is one labeled jump target. Its ID is its index in the session's
// arena and never changes; span and label change as the search narrows.
type Marker struct {
	ID          int
	Span        domain.Span
	Text        string // matched text at creation
	Label       string
	Visible     bool // drawn with a label
	IsNextMatch bool
	Side        Side

	drawn bool // has an overlay, labeled or not
}

// extend grows the span by one character to the right
func (m *Marker) extend() {
	m.Span.End.Col++
}

// shrink undoes one extend
func (m *Marker) shrink() {
	if m.Span.End.Col > m.Span.Start.Col {
		m.Span.End.Col--
	}
}

// MarkerView is a read-only copy of a marker handed to callers
type MarkerView struct {
	ID          int
	Span        domain.Span
	Label       string
	IsNextMatch bool
	Side        Side
}

func (m *Marker) view() MarkerView {
	return MarkerView{
		ID:          m.ID,
		Span:        m.Span,
		Label:       m.Label,
		IsNextMatch: m.IsNextMatch,
		Side:        m.Side,
	}
}
