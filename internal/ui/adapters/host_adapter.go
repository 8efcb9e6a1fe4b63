package adapters

import (
	"github.com/sirupsen/logrus"

	"leapview/internal/buffer"
	"leapview/internal/domain"
	"leapview/internal/jump"
	"leapview/internal/ui/state"
)

// HostAdapter adapts the viewer state and buffer to the jump engine's Host
// interface. Overlay calls become entries in ViewerState.Overlays which the
// renderer draws on the next frame.
type HostAdapter struct {
	state   *state.ViewerState
	buf     *buffer.Buffer
	visible func() domain.LineRange
}

// NewHostAdapter creates a new adapter. visible reports the lines on screen.
func NewHostAdapter(viewerState *state.ViewerState, buf *buffer.Buffer, visible func() domain.LineRange) *HostAdapter {
	return &HostAdapter{state: viewerState, buf: buf, visible: visible}
}

var _ jump.Host = (*HostAdapter)(nil)

func (a *HostAdapter) Scan(pattern string, caseInsensitive bool, visible []domain.LineRange) []domain.Match {
	return a.buf.Scan(pattern, caseInsensitive, visible)
}

func (a *HostAdapter) TextAt(span domain.Span) string {
	return a.buf.TextAt(span)
}

func (a *HostAdapter) CharAfter(span domain.Span) string {
	return a.buf.CharAfter(span)
}

func (a *HostAdapter) LineLength(line int) int {
	return a.buf.LineLength(line)
}

func (a *HostAdapter) ShowOverlay(id int, span domain.Span, label string, style jump.Style) {
	a.state.ShowOverlay(id, state.Overlay{Span: span, Label: label, Style: style})
}

func (a *HostAdapter) HideOverlay(id int) {
	a.state.RemoveOverlay(id)
}

func (a *HostAdapter) DisposeOverlay(id int) {
	a.state.RemoveOverlay(id)
}

func (a *HostAdapter) SetDimmed(dimmed bool) {
	a.state.Dimmed = dimmed
}

func (a *HostAdapter) Cursor() domain.Position {
	return a.state.Cursor
}

// SetCursor stores the landing position as is. The model clamps it for
// display after any pending operator has used it.
func (a *HostAdapter) SetCursor(pos domain.Position) {
	a.state.Cursor = pos
}

func (a *HostAdapter) Mode() domain.Mode {
	return a.state.Mode
}

func (a *HostAdapter) SetMode(mode domain.Mode) {
	if mode != a.state.Mode {
		logrus.Debugf("host mode %s -> %s", a.state.Mode, mode)
	}
	a.state.Mode = mode
}

func (a *HostAdapter) PendingOperator() bool {
	return a.state.Operator != ""
}

func (a *HostAdapter) VisibleRanges() []domain.LineRange {
	r := a.visible()
	if r.Last < r.First {
		return nil
	}
	return []domain.LineRange{r}
}
