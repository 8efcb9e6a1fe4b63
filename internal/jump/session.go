package jump

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"leapview/internal/domain"
)

// State is the lifecycle state of a session
type State int

const (
	StateIdle State = iota
	StateTriggerReceived
	StateSearching
	StateJumped
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTriggerReceived:
		return "trigger-received"
	case StateSearching:
		return "searching"
	case StateJumped:
		return "jumped"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Key is one keystroke as seen by a session. Printable input is the typed
// text itself; the named keys are the control characters the terminal sends.
type Key string

const (
	KeyEnter     Key = "\r"
	KeyEsc       Key = "\x1b"
	KeyBackspace Key = "\x7f"
)

// Notices reported in Result.Notice
const (
	NoticeNoPreviousSearch = "no previous search"
	NoticeNoMatch          = "no match"
)

// Result reports what a keystroke did
type Result struct {
	State  State
	Jumped bool
	Target domain.Position
	Notice string
}

// Session is one jump motion, from trigger key to jump or cancel. It owns
// its markers and prefix cache; everything it acquired from the overlay is
// released by teardown on every exit path.
type Session struct {
	id        string
	engine    *Engine
	host      Host
	opts      Options
	direction Direction
	reach     Reach
	state     State

	search    []rune
	firstChar rune
	prevMode  domain.Mode
	start     domain.Position

	markers []*Marker // arena; index == Marker.ID
	cache   *prefixCache
	next    int // ID of the next-match marker, -1 when none

	log *logrus.Entry
}

func newSession(e *Engine, reach Reach) *Session {
	direction := Unidirectional
	if e.opts.Bidirectional {
		direction = Bidirectional
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		engine:    e,
		host:      e.host,
		opts:      e.opts,
		direction: direction,
		reach:     reach,
		state:     StateIdle,
		cache:     newPrefixCache(),
		next:      -1,
		log:       e.log.WithField("session", id[:8]),
	}
}

// trigger captures the mode and cursor and enters the searching state
func (s *Session) trigger() {
	s.state = StateTriggerReceived
	s.prevMode = s.host.Mode()
	s.start = s.host.Cursor()
	s.host.SetMode(domain.ModeJump)
	if s.opts.Dim {
		s.host.SetDimmed(true)
	}
	s.state = StateSearching

	s.log.WithFields(logrus.Fields{
		"direction": s.direction,
		"cursor":    s.start,
		"mode":      s.prevMode,
	}).Debug("jump session started")

	s.engine.publish(domain.JumpStartedEvent{
		SessionID:     s.id,
		Bidirectional: s.direction == Bidirectional,
		Cursor:        s.start,
	})
}

// ID returns the session's unique id
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state
func (s *Session) State() State { return s.state }

// Search returns the search string typed so far
func (s *Session) Search() string { return string(s.search) }

// Direction returns the ordering strategy of the session
func (s *Session) Direction() Direction { return s.direction }

// Active reports whether the session still accepts keys
func (s *Session) Active() bool { return s.state == StateSearching }

// VisibleMarkers returns the labeled markers in labeling order
func (s *Session) VisibleMarkers() []MarkerView {
	entry, ok := s.current()
	if !ok {
		return nil
	}
	var out []MarkerView
	for _, id := range entry.ids {
		if m := s.markers[id]; m.Visible {
			out = append(out, m.view())
		}
	}
	return out
}

// NextMatch returns the marker Enter would jump to
func (s *Session) NextMatch() (MarkerView, bool) {
	if s.next < 0 {
		return MarkerView{}, false
	}
	return s.markers[s.next].view(), true
}

// HandleKey feeds one keystroke to the session. Multi-character input (a
// paste) is processed one rune at a time until the session ends.
func (s *Session) HandleKey(k Key) Result {
	if s.state != StateSearching {
		return s.result()
	}

	switch k {
	case KeyEsc:
		s.cancel("cancelled")
		return s.result()
	case KeyBackspace:
		return s.backspace()
	case KeyEnter:
		return s.confirm()
	}

	res := s.result()
	for _, r := range string(k) {
		res = s.typeRune(r)
		if s.state != StateSearching {
			break
		}
	}
	return res
}

func (s *Session) result() Result {
	return Result{State: s.state}
}

// typeRune either resolves a visible label or narrows the search
func (s *Session) typeRune(r rune) Result {
	if m := s.markerByLabel(string(r)); m != nil {
		return s.jump(m)
	}
	s.appendRune(r)
	return s.result()
}

func (s *Session) markerByLabel(label string) *Marker {
	entry, ok := s.current()
	if !ok {
		return nil
	}
	for _, id := range entry.ids {
		if m := s.markers[id]; m.Visible && m.Label == label {
			return m
		}
	}
	return nil
}

func (s *Session) current() (*cacheEntry, bool) {
	if len(s.search) == 0 {
		return nil, false
	}
	return s.cache.get(string(s.search))
}

func (s *Session) appendRune(r rune) {
	s.search = append(s.search, r)
	if len(s.search) == 1 {
		s.firstChar = r
		s.scan()
	} else {
		s.narrow(r)
	}
	s.refresh()
}

// scan runs the full match finder for the first character of the session
func (s *Session) scan() {
	matches := FindMatches(s.host, string(s.firstChar), s.opts.IgnoreCase, s.host.VisibleRanges())

	var ordered []sidedMatch
	if s.direction == Bidirectional {
		ordered = OrderBidirectional(matches, s.start, s.opts.IgnoreCase)
	} else {
		for _, m := range OrderByProximity(matches, s.start) {
			side := SideAfter
			if m.Span.Start.Before(s.start) {
				side = SideBefore
			}
			ordered = append(ordered, sidedMatch{Match: m, Side: side})
		}
	}

	ids := make([]int, 0, len(ordered))
	for _, m := range ordered {
		id := len(s.markers)
		s.markers = append(s.markers, &Marker{
			ID:   id,
			Span: m.Span,
			Text: m.Text,
			Side: m.Side,
		})
		ids = append(ids, id)
	}
	s.cache.put(string(s.firstChar), ids)

	s.log.WithField("matches", len(ids)).Debug("initial scan")
}

// narrow derives the marker set for the extended search from the previous
// one using only the typed rune
func (s *Session) narrow(r rune) {
	prevKey := string(s.search[:len(s.search)-1])
	key := string(s.search)

	prev, _ := s.cache.get(prevKey)
	entry, cached := s.cache.get(key)
	if !cached {
		typed := string(r)
		matched := make([]int, 0, len(prev.ids))
		for _, id := range prev.ids {
			m := s.markers[id]
			if equalChar(s.host.CharAfter(m.Span), typed, s.opts.IgnoreCase) {
				matched = append(matched, id)
			}
		}
		entry = s.cache.put(key, matched)
	}

	for _, id := range prev.minus(entry) {
		s.hide(s.markers[id])
	}
	for _, id := range entry.ids {
		s.markers[id].extend()
	}

	s.log.WithFields(logrus.Fields{
		"search":  key,
		"matches": len(entry.ids),
		"reused":  cached,
	}).Debug("narrowed")
}

func (s *Session) backspace() Result {
	if len(s.search) == 0 {
		s.cancel("backspace on empty search")
		return s.result()
	}

	if entry, ok := s.current(); ok {
		for _, id := range entry.ids {
			s.markers[id].shrink()
		}
	}
	s.search = s.search[:len(s.search)-1]
	if len(s.search) == 0 {
		s.cancel("search cleared")
		return s.result()
	}

	s.refresh()
	return s.result()
}

// confirm handles Enter: jump to the next match, or repeat the last search
// when nothing has been typed yet
func (s *Session) confirm() Result {
	if len(s.search) > 0 {
		if s.next < 0 {
			s.cancel(NoticeNoMatch)
			res := s.result()
			res.Notice = NoticeNoMatch
			return res
		}
		return s.jump(s.markers[s.next])
	}

	previous := s.engine.previous
	if len(previous) == 0 {
		s.engine.publish(domain.NoPreviousSearchEvent{SessionID: s.id})
		s.cancel(NoticeNoPreviousSearch)
		res := s.result()
		res.Notice = NoticeNoPreviousSearch
		return res
	}

	// replay as typed text; replayed runes never resolve labels
	for _, r := range previous {
		s.appendRune(r)
	}
	return s.result()
}

// refresh relabels the current marker set, recomputes the next match and
// pushes the result to the overlay
func (s *Session) refresh() {
	entry, ok := s.current()
	if !ok {
		return
	}

	markers := make([]*Marker, len(entry.ids))
	collisions := make([]string, len(entry.ids))
	for i, id := range entry.ids {
		markers[i] = s.markers[id]
		collisions[i] = s.host.CharAfter(markers[i].Span)
	}

	candidates := CandidateLabels(s.opts.Labels, collisions, s.opts.IgnoreCase)
	unlabeled := AssignLabels(markers, candidates)
	for _, m := range unlabeled {
		s.hide(m)
	}

	s.updateNextMatch(markers)

	visible := 0
	for _, m := range markers {
		if m.Label == "" {
			// Enter can still reach it, so it is drawn without a label
			if m.IsNextMatch {
				s.host.ShowOverlay(m.ID, m.Span, "", StyleNextMatch)
				m.drawn = true
			}
			continue
		}
		style := StyleMatch
		if m.IsNextMatch {
			style = StyleNextMatch
		}
		m.Visible = true
		m.drawn = true
		s.host.ShowOverlay(m.ID, m.Span, m.Label, style)
		visible++
	}

	s.engine.publish(domain.MarkersUpdatedEvent{
		SessionID: s.id,
		Search:    string(s.search),
		Visible:   visible,
		Matched:   len(markers),
	})
}

// updateNextMatch flags the first match strictly after the session's start
// cursor, wrapping to the first match in the buffer
func (s *Session) updateNextMatch(markers []*Marker) {
	if s.next >= 0 {
		s.markers[s.next].IsNextMatch = false
	}
	s.next = -1

	var after, first *Marker
	for _, m := range markers {
		p := m.Span.Start
		if first == nil || p.Before(first.Span.Start) {
			first = m
		}
		if p.After(s.start) && (after == nil || p.Before(after.Span.Start)) {
			after = m
		}
	}
	target := after
	if target == nil {
		target = first
	}
	if target != nil {
		target.IsNextMatch = true
		s.next = target.ID
	}
}

func (s *Session) hide(m *Marker) {
	if m.drawn {
		s.host.HideOverlay(m.ID)
	}
	m.Visible = false
	m.drawn = false
}

// landing computes where the cursor goes for a chosen marker
func (s *Session) landing(m *Marker) domain.Position {
	operator := s.host.PendingOperator()
	if s.direction == Bidirectional {
		if operator || s.prevMode.IsVisual() {
			return Land(landingFor(m.Side, s.reach), m.Span, s.host)
		}
		return m.Span.Start
	}
	if operator {
		return m.Span.End
	}
	if s.prevMode.IsVisual() {
		return Land(forwardLanding(s.reach), m.Span, s.host)
	}
	return m.Span.Start
}

func (s *Session) jump(m *Marker) Result {
	target := s.landing(m)
	text := s.host.TextAt(m.Span)
	search := string(s.search)
	s.engine.previous = append([]rune(nil), s.search...)

	s.teardown()
	s.host.SetCursor(target)
	s.state = StateJumped

	s.log.WithFields(logrus.Fields{
		"search": search,
		"label":  m.Label,
		"text":   text,
		"target": target,
	}).Debug("jumped")

	s.engine.publish(domain.JumpedEvent{
		SessionID: s.id,
		Search:    search,
		From:      s.start,
		To:        target,
	})
	return Result{State: s.state, Jumped: true, Target: target}
}

func (s *Session) cancel(reason string) {
	if s.state != StateSearching && s.state != StateTriggerReceived {
		return
	}
	s.teardown()
	s.state = StateCancelled

	s.log.WithField("reason", reason).Debug("jump session cancelled")
	s.engine.publish(domain.JumpCancelledEvent{SessionID: s.id, Reason: reason})
}

// teardown is the single exit routine: it disposes every marker the session
// ever created (not just the visible ones), clears the cache, undims and
// restores the captured mode
func (s *Session) teardown() {
	for _, m := range s.markers {
		s.host.DisposeOverlay(m.ID)
		m.Visible = false
		m.drawn = false
		m.IsNextMatch = false
	}
	s.markers = nil
	s.cache.clear()
	s.next = -1

	if s.opts.Dim {
		s.host.SetDimmed(false)
	}
	s.host.SetMode(s.prevMode)
	s.engine.release(s)
}
