package logic

import (
	"leapview/internal/domain"
)

// Lines is the part of the buffer the navigator needs
type Lines interface {
	LineCount() int
	LineLength(line int) int
}

// Navigator handles cursor movement and viewport management
type Navigator struct {
	lines          Lines
	cursor         domain.Position
	viewportOffset int
	viewportHeight int
	scrollOff      int
}

// NewNavigator creates a new navigator
func NewNavigator(lines Lines, scrollOff int) *Navigator {
	return &Navigator{
		lines:          lines,
		viewportHeight: 1,
		scrollOff:      scrollOff,
	}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(cursor domain.Position, viewportOffset, viewportHeight int) {
	n.cursor = cursor
	n.viewportOffset = viewportOffset
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.viewportHeight = viewportHeight
}

// Cursor returns the current cursor
func (n *Navigator) Cursor() domain.Position {
	return n.cursor
}

// ViewportOffset returns the first line on screen
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// SetScrollOff changes the number of context lines kept around the cursor
func (n *Navigator) SetScrollOff(lines int) {
	n.scrollOff = lines
}

// Move applies a named motion and returns the new cursor and viewport offset
func (n *Navigator) Move(direction string) (domain.Position, int) {
	c := n.cursor
	switch direction {
	case "up":
		c.Line--
	case "down":
		c.Line++
	case "left":
		c.Col--
	case "right":
		c.Col++
	case "pageup":
		c.Line -= n.viewportHeight
	case "pagedown":
		c.Line += n.viewportHeight
	case "home":
		c = domain.Position{}
	case "end":
		c.Line = n.lines.LineCount() - 1
	case "linestart":
		c.Col = 0
	case "lineend":
		c.Col = n.lines.LineLength(c.Line) - 1
	}
	return n.SetCursor(c)
}

// SetCursor places the cursor, clamped to the buffer, and scrolls it into view
func (n *Navigator) SetCursor(p domain.Position) (domain.Position, int) {
	n.cursor = n.clamp(p)
	n.ensureCursorVisible()
	return n.cursor, n.viewportOffset
}

func (n *Navigator) clamp(p domain.Position) domain.Position {
	last := n.lines.LineCount() - 1
	if last < 0 {
		return domain.Position{}
	}
	if p.Line > last {
		p.Line = last
	}
	if p.Line < 0 {
		p.Line = 0
	}
	// the cursor may sit one past the end only on an empty line
	maxCol := n.lines.LineLength(p.Line) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	if p.Col > maxCol {
		p.Col = maxCol
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// ensureCursorVisible adjusts the viewport to keep the cursor visible with
// scrollOff lines of context where the buffer allows it
func (n *Navigator) ensureCursorVisible() {
	off := n.scrollOff
	if max := (n.viewportHeight - 1) / 2; off > max {
		off = max
	}

	if n.cursor.Line-off < n.viewportOffset {
		n.viewportOffset = n.cursor.Line - off
	}
	if n.cursor.Line+off >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor.Line + off - n.viewportHeight + 1
	}

	maxOffset := n.lines.LineCount() - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// VisibleRange returns the buffer lines currently on screen
func (n *Navigator) VisibleRange() domain.LineRange {
	last := n.viewportOffset + n.viewportHeight - 1
	if max := n.lines.LineCount() - 1; last > max {
		last = max
	}
	return domain.LineRange{First: n.viewportOffset, Last: last}
}
