package state

import (
	"leapview/internal/domain"
	"leapview/internal/jump"
)

// Overlay is one jump marker as the viewer draws it
type Overlay struct {
	Span  domain.Span
	Label string
	Style jump.Style
}

// ViewerState contains all the viewer state
type ViewerState struct {
	// Cursor and mode
	Cursor   domain.Position
	Mode     domain.Mode
	Anchor   domain.Position // visual selection start
	Operator string          // pending operator key, "" when none
	Register string          // last yanked or deleted text

	// Jump overlays keyed by marker id
	Overlays map[int]Overlay
	Dimmed   bool

	// UI state
	ViewportOffset int // first buffer line on screen
	ViewportHeight int // buffer lines on screen
	StatusMessage  string
	ShowHelp       bool
}

// NewViewerState creates a new viewer state
func NewViewerState() *ViewerState {
	return &ViewerState{
		Mode:           domain.ModeNormal,
		Overlays:       make(map[int]Overlay),
		ViewportHeight: 20, // Default
	}
}

// Overlay operations

// ShowOverlay adds or replaces the overlay for a marker
func (s *ViewerState) ShowOverlay(id int, o Overlay) {
	s.Overlays[id] = o
}

// RemoveOverlay drops the overlay for a marker
func (s *ViewerState) RemoveOverlay(id int) {
	delete(s.Overlays, id)
}

// ClearOverlays drops every overlay
func (s *ViewerState) ClearOverlays() {
	s.Overlays = make(map[int]Overlay)
}

// Visual selection

// StartVisual enters mode with the anchor at the cursor
func (s *ViewerState) StartVisual(mode domain.Mode) {
	s.Mode = mode
	s.Anchor = s.Cursor
}

// ExitVisual returns to normal mode
func (s *ViewerState) ExitVisual() {
	s.Mode = domain.ModeNormal
}

// Selection returns the ordered visual selection, inclusive of both ends
func (s *ViewerState) Selection() (from, to domain.Position, ok bool) {
	if !s.Mode.IsVisual() {
		return domain.Position{}, domain.Position{}, false
	}
	from, to = s.Anchor, s.Cursor
	if to.Before(from) {
		from, to = to, from
	}
	return from, to, true
}
