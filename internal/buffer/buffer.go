// Package buffer holds the line-oriented in-memory text of a file and the
// scan/lookahead primitives the jump engine needs from its host.
package buffer

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"leapview/internal/domain"
)

// Buffer is text split into lines without their terminators. Columns are
// rune indexes. Edits stay in memory; nothing is written back.
type Buffer struct {
	name  string
	lines []string

	// last compiled scan pattern, reused across keystrokes
	lastPattern string
	lastRegexp  *regexp.Regexp
}

// New creates a buffer from text. "\r\n" line endings are normalised.
func New(name, text string) *Buffer {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	// a trailing newline does not start another line
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Buffer{name: name, lines: lines}
}

// ReadFile loads a buffer from disk
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8 text", path)
	}
	return New(path, string(data)), nil
}

// Name returns the file name the buffer was loaded from
func (b *Buffer) Name() string {
	return b.name
}

// LineCount returns the number of lines
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or "" when out of range
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineLength returns the length of line i in runes
func (b *Buffer) LineLength(i int) int {
	return utf8.RuneCountInString(b.Line(i))
}

// Scan finds every non-overlapping match of pattern on the visible lines.
// Matches never cross a line break. An invalid pattern yields no matches.
func (b *Buffer) Scan(pattern string, caseInsensitive bool, visible []domain.LineRange) []domain.Match {
	if pattern == "" {
		return nil
	}

	expr := pattern
	if caseInsensitive {
		expr = "(?i)" + pattern
	}
	re := b.compile(expr)
	if re == nil {
		return nil
	}

	var matches []domain.Match
	for _, r := range visible {
		first := max(r.First, 0)
		last := min(r.Last, len(b.lines)-1)
		for line := first; line <= last; line++ {
			text := b.lines[line]
			for _, loc := range re.FindAllStringIndex(text, -1) {
				if loc[0] == loc[1] {
					continue
				}
				start := utf8.RuneCountInString(text[:loc[0]])
				end := start + utf8.RuneCountInString(text[loc[0]:loc[1]])
				matches = append(matches, domain.Match{
					Span: domain.Span{
						Start: domain.Position{Line: line, Col: start},
						End:   domain.Position{Line: line, Col: end},
					},
					Text: text[loc[0]:loc[1]],
				})
			}
		}
	}
	return matches
}

func (b *Buffer) compile(expr string) *regexp.Regexp {
	if expr == b.lastPattern && b.lastRegexp != nil {
		return b.lastRegexp
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		logrus.Debugf("buffer: bad scan pattern %q: %v", expr, err)
		return nil
	}
	b.lastPattern = expr
	b.lastRegexp = re
	return re
}

// TextAt returns the text covered by span, clamped to its line
func (b *Buffer) TextAt(span domain.Span) string {
	runes := []rune(b.Line(span.Start.Line))
	start := clamp(span.Start.Col, 0, len(runes))
	end := clamp(span.End.Col, start, len(runes))
	return string(runes[start:end])
}

// CharAfter returns the single character following span on its line, or ""
// when the span ends at the end of the line
func (b *Buffer) CharAfter(span domain.Span) string {
	runes := []rune(b.Line(span.End.Line))
	if span.End.Col < 0 || span.End.Col >= len(runes) {
		return ""
	}
	return string(runes[span.End.Col])
}

// TextRange returns the text from one position up to (not including) another,
// joining lines with "\n". The positions may come in either order.
func (b *Buffer) TextRange(from, to domain.Position) string {
	if to.Before(from) {
		from, to = to, from
	}
	runes := []rune(b.joined())
	start := clamp(b.OffsetOf(from), 0, len(runes))
	end := clamp(b.OffsetOf(to), start, len(runes))
	return string(runes[start:end])
}

// Delete removes the text between two positions and returns it
func (b *Buffer) Delete(from, to domain.Position) string {
	if to.Before(from) {
		from, to = to, from
	}
	runes := []rune(b.joined())
	start := clamp(b.OffsetOf(from), 0, len(runes))
	end := clamp(b.OffsetOf(to), start, len(runes))
	removed := string(runes[start:end])

	b.lines = strings.Split(string(runes[:start])+string(runes[end:]), "\n")
	return removed
}

func (b *Buffer) joined() string {
	return strings.Join(b.lines, "\n")
}

// PositionAt converts a rune offset from the start of the buffer (counting one
// rune per line break) to a position. Offsets past the end clamp to the end.
func (b *Buffer) PositionAt(offset int) domain.Position {
	if offset < 0 {
		offset = 0
	}
	for i := range b.lines {
		n := b.LineLength(i)
		if offset <= n {
			return domain.Position{Line: i, Col: offset}
		}
		offset -= n + 1
	}
	last := len(b.lines) - 1
	return domain.Position{Line: last, Col: b.LineLength(last)}
}

// OffsetOf is the inverse of PositionAt
func (b *Buffer) OffsetOf(pos domain.Position) int {
	offset := 0
	for i := 0; i < pos.Line && i < len(b.lines); i++ {
		offset += b.LineLength(i) + 1
	}
	return offset + pos.Col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
