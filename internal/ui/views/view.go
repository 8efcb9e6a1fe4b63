package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"leapview/internal/domain"
)

// Marker is a jump overlay as the renderer draws it
type Marker struct {
	Span  domain.Span
	Label string
	Next  bool
}

// Selection is a visual selection, inclusive of both ends
type Selection struct {
	From     domain.Position
	To       domain.Position
	Linewise bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	FileName        string
	Lines           []string // buffer lines starting at FirstLine
	FirstLine       int
	LineCount       int
	ShowLineNumbers bool
	TabWidth        int
	Cursor          domain.Position
	ModeName        string
	Selection       *Selection
	Markers         []Marker
	Dimmed          bool
	Jumping         bool
	Search          string
	Bidirectional   bool
	Operator        string
	StatusMessage   string
	HelpView        string
}

type cellKind int

const (
	cellText cellKind = iota
	cellDim
	cellSelection
	cellMatch
	cellNextMatch
	cellLabel
	cellCursor
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// SetStyles swaps the styles, e.g. after a config reload
func (r *Renderer) SetStyles(styles *Styles) {
	r.styles = styles
}

// TextHeight returns how many buffer lines fit on screen
func TextHeight(height int, helpView string) int {
	h := height - 1 // status bar
	if helpView != "" {
		h -= lipgloss.Height(helpView)
	}
	if h < 1 {
		h = 1
	}
	return h
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	byLine := make(map[int][]Marker)
	for _, m := range vs.Markers {
		byLine[m.Span.Start.Line] = append(byLine[m.Span.Start.Line], m)
	}

	gutter := 0
	if vs.ShowLineNumbers {
		gutter = len(strconv.Itoa(vs.LineCount)) + 1
	}

	var content strings.Builder
	for i := 0; i < TextHeight(vs.Height, vs.HelpView); i++ {
		if i > 0 {
			content.WriteString("\n")
		}
		if i >= len(vs.Lines) {
			content.WriteString(r.styles.Filler.Render("~"))
			continue
		}
		line := vs.FirstLine + i
		if gutter > 0 {
			content.WriteString(r.styles.LineNumber.Render(fmt.Sprintf("%*d ", gutter-1, line+1)))
		}
		content.WriteString(r.renderLine(line, vs.Lines[i], byLine[line], vs, vs.Width-gutter))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatus(vs))
	if vs.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.HelpView))
	}
	return content.String()
}

// renderLine styles one buffer line cell by cell. A marker's label replaces
// the first character of its match; the rest of the match is highlighted.
func (r *Renderer) renderLine(line int, text string, markers []Marker, vs ViewState, width int) string {
	glyphs := []rune(text)
	if vs.Cursor.Line == line && vs.Cursor.Col >= len(glyphs) {
		// cursor past the end (empty line or exclusive landing)
		for len(glyphs) <= vs.Cursor.Col {
			glyphs = append(glyphs, ' ')
		}
	}

	base := cellText
	if vs.Dimmed {
		base = cellDim
	}
	kinds := make([]cellKind, len(glyphs))
	for i := range kinds {
		kinds[i] = base
		if vs.Selection != nil && selected(vs.Selection, line, i) {
			kinds[i] = cellSelection
		}
	}

	if vs.Cursor.Line == line && vs.Cursor.Col >= 0 {
		kinds[vs.Cursor.Col] = cellCursor
	}

	for _, m := range markers {
		kind := cellMatch
		if m.Next {
			kind = cellNextMatch
		}
		for c := m.Span.Start.Col; c < m.Span.End.Col && c < len(glyphs); c++ {
			kinds[c] = kind
		}
		if label := []rune(m.Label); len(label) > 0 && m.Span.Start.Col < len(glyphs) {
			kinds[m.Span.Start.Col] = cellLabel
			glyphs[m.Span.Start.Col] = label[0]
		}
	}

	var out, run strings.Builder
	runKind := base
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(r.style(runKind).Render(run.String()))
			run.Reset()
		}
	}

	used := 0
	for i, g := range glyphs {
		cell := string(g)
		w := runewidth.RuneWidth(g)
		if g == '\t' {
			tab := vs.TabWidth
			if tab < 1 {
				tab = 4
			}
			w = tab - used%tab
			cell = strings.Repeat(" ", w)
		}
		if width > 0 && used+w > width {
			break
		}
		if kinds[i] != runKind {
			flush()
			runKind = kinds[i]
		}
		run.WriteString(cell)
		used += w
	}
	flush()
	return out.String()
}

func selected(sel *Selection, line, col int) bool {
	if line < sel.From.Line || line > sel.To.Line {
		return false
	}
	if sel.Linewise {
		return true
	}
	if line == sel.From.Line && col < sel.From.Col {
		return false
	}
	if line == sel.To.Line && col > sel.To.Col {
		return false
	}
	return true
}

func (r *Renderer) style(kind cellKind) lipgloss.Style {
	switch kind {
	case cellDim:
		return r.styles.Dim
	case cellSelection:
		return r.styles.Selection
	case cellMatch:
		return r.styles.Match
	case cellNextMatch:
		return r.styles.NextMatch
	case cellLabel:
		return r.styles.Label
	case cellCursor:
		return r.styles.Cursor
	default:
		return r.styles.Text
	}
}

// renderStatus draws the bottom bar: mode, file, jump search or pending
// operator on the left, message and cursor position on the right
func (r *Renderer) renderStatus(vs ViewState) string {
	left := r.styles.StatusMode.Render(" "+strings.ToUpper(vs.ModeName)+" ") +
		r.styles.Status.Render(" "+vs.FileName+" ")

	if vs.Jumping {
		prompt := "jump"
		if vs.Bidirectional {
			prompt = "jump ↔"
		}
		left += r.styles.Search.Render(fmt.Sprintf(" %s: %s ", prompt, vs.Search))
	} else if vs.Operator != "" {
		left += r.styles.Search.Render(" " + vs.Operator + " ")
	}

	right := r.styles.Status.Render(fmt.Sprintf(" %d:%d ", vs.Cursor.Line+1, vs.Cursor.Col+1))
	if vs.StatusMessage != "" {
		right = r.styles.Notice.Render(" "+vs.StatusMessage+" ") + right
	}

	gap := vs.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + r.styles.Status.Render(strings.Repeat(" ", gap)) + right
}
