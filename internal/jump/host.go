package jump

import "leapview/internal/domain"

// Style tells the overlay how to draw a marker
type Style int

const (
	StyleMatch Style = iota
	StyleNextMatch
)

// Scanner finds literal matches of an already escaped pattern on the given
// visible lines
type Scanner interface {
	Scan(pattern string, caseInsensitive bool, visible []domain.LineRange) []domain.Match
}

// TextSource gives the engine read access to buffer text around matches
type TextSource interface {
	TextAt(span domain.Span) string
	CharAfter(span domain.Span) string
	LineLength(line int) int
}

// Overlay receives rendering decisions. The engine never draws; it only
// says which spans carry which labels and when they go away.
type Overlay interface {
	ShowOverlay(id int, span domain.Span, label string, style Style)
	HideOverlay(id int)
	DisposeOverlay(id int)
	SetDimmed(dimmed bool)
}

// Cursor is the host's cursor and mode state
type Cursor interface {
	Cursor() domain.Position
	SetCursor(pos domain.Position)
	Mode() domain.Mode
	SetMode(mode domain.Mode)
	PendingOperator() bool
}

// Host is everything a session needs from the editor integration
type Host interface {
	Scanner
	TextSource
	Overlay
	Cursor
	VisibleRanges() []domain.LineRange
}

// Publisher receives session lifecycle events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}
