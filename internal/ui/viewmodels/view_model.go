package viewmodels

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"

	"leapview/internal/buffer"
	"leapview/internal/config"
	"leapview/internal/domain"
	"leapview/internal/jump"
	"leapview/internal/ui/state"
	"leapview/internal/ui/views"
)

// ViewModel transforms viewer state into view-ready data
type ViewModel struct {
	state    *state.ViewerState
	buf      *buffer.Buffer
	config   *config.Config
	width    int
	height   int
	modeName string
	search   string
	jumping  bool
	bidi     bool
	helpView string
}

// NewViewModel creates a new view model
func NewViewModel(viewerState *state.ViewerState, buf *buffer.Buffer, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  viewerState,
		buf:    buf,
		config: cfg,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetConfig replaces the config, e.g. after a reload
func (vm *ViewModel) SetConfig(cfg *config.Config) {
	vm.config = cfg
}

// SetModeName sets the name shown in the status bar
func (vm *ViewModel) SetModeName(name string) {
	vm.modeName = name
}

// SetJump describes the running jump session, if any
func (vm *ViewModel) SetJump(jumping bool, search string, bidirectional bool) {
	vm.jumping = jumping
	vm.search = search
	vm.bidi = bidirectional
}

// SetHelp renders the key legend below the status bar
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap, show bool) {
	if show {
		vm.helpView = helpModel.FullHelpView(keys.FullHelp())
		return
	}
	vm.helpView = helpModel.ShortHelpView(keys.ShortHelp())
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	first := vm.state.ViewportOffset
	last := first + views.TextHeight(vm.height, vm.helpView)
	if last > vm.buf.LineCount() {
		last = vm.buf.LineCount()
	}
	if last < first {
		last = first
	}
	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		lines = append(lines, vm.buf.Line(i))
	}

	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		FileName:        vm.buf.Name(),
		Lines:           lines,
		FirstLine:       first,
		LineCount:       vm.buf.LineCount(),
		ShowLineNumbers: vm.config.UISettings.ShowLineNumbers,
		TabWidth:        vm.config.UISettings.TabWidth,
		Cursor:          vm.state.Cursor,
		ModeName:        vm.modeName,
		Markers:         vm.markers(),
		Dimmed:          vm.state.Dimmed,
		Jumping:         vm.jumping,
		Search:          vm.search,
		Bidirectional:   vm.bidi,
		Operator:        vm.state.Operator,
		StatusMessage:   vm.state.StatusMessage,
		HelpView:        vm.helpView,
	}
	if from, to, ok := vm.state.Selection(); ok {
		vs.Selection = &views.Selection{
			From:     from,
			To:       to,
			Linewise: vm.state.Mode == domain.ModeVisualLine,
		}
	}
	return vs
}

// markers returns the overlays in a stable order so frames do not flicker
func (vm *ViewModel) markers() []views.Marker {
	ids := make([]int, 0, len(vm.state.Overlays))
	for id := range vm.state.Overlays {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]views.Marker, 0, len(ids))
	for _, id := range ids {
		o := vm.state.Overlays[id]
		out = append(out, views.Marker{
			Span:  o.Span,
			Label: o.Label,
			Next:  o.Style == jump.StyleNextMatch,
		})
	}
	return out
}
