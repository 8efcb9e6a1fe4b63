// Package jump implements the jump-label motion: incremental literal search
// over the visible text, short labels on every match, and a cursor jump when
// a label is typed.
package jump

import (
	"github.com/sirupsen/logrus"

	"leapview/internal/config"
	"leapview/internal/domain"
)

// Options is the read-only configuration a session runs with
type Options struct {
	Enabled       bool
	Labels        []rune
	IgnoreCase    bool
	Bidirectional bool
	Dim           bool
}

// OptionsFromConfig converts the jump section of the app config
func OptionsFromConfig(js config.JumpSettings) Options {
	return Options{
		Enabled:       js.Enabled,
		Labels:        []rune(js.Labels),
		IgnoreCase:    js.IgnoreCase,
		Bidirectional: js.Bidirectional,
		Dim:           js.Dim,
	}
}

// Engine owns at most one active session plus the state that outlives
// sessions (the last search string for repeat). It is not safe for
// concurrent use; the host drives it from its event loop.
type Engine struct {
	host     Host
	opts     Options
	pub      Publisher
	log      *logrus.Entry
	session  *Session
	previous []rune
}

// NewEngine creates an engine for host. pub may be nil.
func NewEngine(host Host, opts Options, pub Publisher) *Engine {
	if len(opts.Labels) == 0 {
		opts.Labels = []rune(config.DefaultLabels)
	}
	return &Engine{
		host: host,
		opts: opts,
		pub:  pub,
		log:  logrus.WithField("component", "jump"),
	}
}

// SetOptions replaces the options used by sessions started from now on
func (e *Engine) SetOptions(opts Options) {
	if len(opts.Labels) == 0 {
		opts.Labels = []rune(config.DefaultLabels)
	}
	e.opts = opts
}

// Options returns the current options
func (e *Engine) Options() Options {
	return e.opts
}

// Start handles a trigger key. Any session still running is cancelled and
// fully torn down first. It returns false when the feature is disabled.
func (e *Engine) Start(reach Reach) (*Session, bool) {
	if !e.opts.Enabled {
		e.log.Debug("trigger ignored, jump disabled")
		return nil, false
	}
	e.Reset()

	s := newSession(e, reach)
	e.session = s
	s.trigger()
	return s, true
}

// Active returns the running session, if any
func (e *Engine) Active() (*Session, bool) {
	if e.session == nil || !e.session.Active() {
		return nil, false
	}
	return e.session, true
}

// HandleKey forwards a key to the active session
func (e *Engine) HandleKey(k Key) Result {
	s, ok := e.Active()
	if !ok {
		return Result{State: StateIdle}
	}
	return s.HandleKey(k)
}

// Reset cancels the active session, if any
func (e *Engine) Reset() {
	if e.session != nil {
		e.session.cancel("reset")
		e.session = nil
	}
}

// PreviousSearch returns the search string of the last completed jump
func (e *Engine) PreviousSearch() string {
	return string(e.previous)
}

func (e *Engine) release(s *Session) {
	if e.session == s {
		e.session = nil
	}
}

func (e *Engine) publish(ev domain.DomainEvent) {
	if e.pub != nil {
		e.pub.Publish(ev)
	}
}
