package jump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leapview/internal/buffer"
	"leapview/internal/domain"
)

type overlayCall struct {
	span  domain.Span
	label string
	style Style
}

// fakeHost is a Host backed by a real buffer that records overlay calls
type fakeHost struct {
	*buffer.Buffer

	cursor   domain.Position
	mode     domain.Mode
	operator bool
	visible  []domain.LineRange
	dimmed   bool

	shown    map[int]overlayCall
	hidden   map[int]bool
	disposed map[int]bool
}

func newFakeHost(text string) *fakeHost {
	b := buffer.New("test", text)
	return &fakeHost{
		Buffer:   b,
		visible:  []domain.LineRange{{First: 0, Last: b.LineCount() - 1}},
		shown:    make(map[int]overlayCall),
		hidden:   make(map[int]bool),
		disposed: make(map[int]bool),
	}
}

func (h *fakeHost) ShowOverlay(id int, span domain.Span, label string, style Style) {
	h.shown[id] = overlayCall{span: span, label: label, style: style}
	delete(h.hidden, id)
}

func (h *fakeHost) HideOverlay(id int) {
	delete(h.shown, id)
	h.hidden[id] = true
}

func (h *fakeHost) DisposeOverlay(id int) {
	delete(h.shown, id)
	delete(h.hidden, id)
	h.disposed[id] = true
}

func (h *fakeHost) SetDimmed(d bool) { h.dimmed = d }
func (h *fakeHost) Cursor() domain.Position { return h.cursor }
func (h *fakeHost) SetCursor(p domain.Position) { h.cursor = p }
func (h *fakeHost) Mode() domain.Mode { return h.mode }
func (h *fakeHost) SetMode(m domain.Mode) { h.mode = m }
func (h *fakeHost) PendingOperator() bool { return h.operator }
func (h *fakeHost) VisibleRanges() []domain.LineRange { return h.visible }

type recorder struct {
	events []domain.DomainEvent
}

func (r *recorder) Publish(ev domain.DomainEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) has(t domain.EventType) bool {
	for _, ev := range r.events {
		if ev.Type() == t {
			return true
		}
	}
	return false
}

func testOptions() Options {
	return Options{
		Enabled: true,
		Labels:  []rune("sklyuiopnm,qwertzxcvbahdgjf;"),
		Dim:     true,
	}
}

func pos(line, col int) domain.Position {
	return domain.Position{Line: line, Col: col}
}

func span(line, start, end int) domain.Span {
	return domain.Span{Start: pos(line, start), End: pos(line, end)}
}

// typeKeys feeds each rune of keys as a separate keystroke
func typeKeys(s *Session, keys string) Result {
	var res Result
	for _, r := range keys {
		res = s.HandleKey(Key(string(r)))
	}
	return res
}

// requireInvariants checks the properties that must hold after every key
func requireInvariants(t *testing.T, s *Session, h *fakeHost) {
	t.Helper()

	labels := make(map[string]int)
	nextCount := 0
	for _, m := range s.markers {
		if m.IsNextMatch {
			nextCount++
		}
		if !m.Visible {
			continue
		}
		require.NotEmpty(t, m.Label, "visible marker %d has no label", m.ID)
		require.NotEqual(t, h.CharAfter(m.Span), m.Label, "marker %d label collides with next char", m.ID)
		if prev, dup := labels[m.Label]; dup {
			t.Fatalf("markers %d and %d share label %q", prev, m.ID, m.Label)
		}
		labels[m.Label] = m.ID
	}
	require.LessOrEqual(t, nextCount, 1, "more than one next-match marker")
	if len(labels) > 0 {
		require.Equal(t, 1, nextCount, "visible markers but no next-match")
	}

	// every cached prefix is a subset of its parent
	for key, entry := range s.cache.entries {
		runes := []rune(key)
		if len(runes) < 2 {
			continue
		}
		parent, ok := s.cache.get(string(runes[:len(runes)-1]))
		require.True(t, ok, "missing parent entry for %q", key)
		require.True(t, entry.subsetOf(parent), "entry %q not a subset of its parent", key)
	}
}
