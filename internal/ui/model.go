package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"leapview/internal/buffer"
	"leapview/internal/config"
	"leapview/internal/domain"
	"leapview/internal/eventbus"
	"leapview/internal/jump"
	"leapview/internal/ui/adapters"
	"leapview/internal/ui/handlers"
	"leapview/internal/ui/input"
	inputtypes "leapview/internal/ui/input/types"
	"leapview/internal/ui/logic"
	"leapview/internal/ui/state"
	"leapview/internal/ui/viewmodels"
	"leapview/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.ViewerState // centralized state
	buf    *buffer.Buffer

	// UI-specific state not in ViewerState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	inPagerMode bool            // tracks if we're currently in pager mode
	jumpFrom    domain.Position // cursor when the running jump started

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	host         *adapters.HostAdapter
	engine       *jump.Engine
	helpRenderer *HelpRenderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, buf *buffer.Buffer) *Model {
	viewerState := state.NewViewerState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        viewerState,
		buf:          buf,
		help:         help.New(),
		keys:         newKeyMap(),
		navigator:    logic.NewNavigator(buf, cfg.UISettings.ScrollOff),
		renderer:     views.NewRenderer(views.NewStyles(cfg.Jump.Colors)),
		viewModel:    viewmodels.NewViewModel(viewerState, buf, cfg),
		inputHandler: input.New(),
	}
	m.helpRenderer = NewHelpRenderer(m.keys)
	m.eventHandler = handlers.NewEventHandler(viewerState, m.applyConfig)
	m.host = adapters.NewHostAdapter(viewerState, buf, m.visibleRange)

	var pub jump.Publisher
	if bus != nil {
		pub = bus
	}
	m.engine = jump.NewEngine(m.host, jump.OptionsFromConfig(cfg.Jump), pub)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Engine exposes the jump engine
func (m *Model) Engine() *jump.Engine {
	return m.engine
}

// State exposes the viewer state
func (m *Model) State() *state.ViewerState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m.inputContext())

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetModeName(m.state.Mode.String())
	if s, ok := m.engine.Active(); ok {
		m.viewModel.SetJump(true, s.Search(), s.Direction() == jump.Bidirectional)
	} else {
		m.viewModel.SetJump(false, "", false)
	}
	m.viewModel.SetHelp(m.help, m.keys, m.state.ShowHelp)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:   m.state,
		Enabled: m.engine.Options().Enabled,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.Cursor, m.state.ViewportOffset = m.navigator.Move(a.Direction)
		return nil

	case inputtypes.StartJumpAction:
		return m.startJump(a.Reach)

	case inputtypes.JumpKeyAction:
		return m.handleJumpResult(m.engine.HandleKey(a.Key))

	case inputtypes.ToggleBidirectionalAction:
		opts := m.engine.Options()
		opts.Bidirectional = !opts.Bidirectional
		m.engine.SetOptions(opts)
		if opts.Bidirectional {
			return m.setStatus("bidirectional jump on")
		}
		return m.setStatus("bidirectional jump off")

	case inputtypes.ToggleVisualAction:
		want := domain.ModeVisual
		if a.Line {
			want = domain.ModeVisualLine
		}
		if m.state.Mode == want {
			m.state.ExitVisual()
		} else {
			m.state.StartVisual(want)
		}
		return nil

	case inputtypes.SetOperatorAction:
		m.state.Operator = a.Operator
		return nil

	case inputtypes.ApplyOperatorAction:
		return m.applySelectionOperator(a.Operator)

	case inputtypes.EscapeAction:
		m.state.Operator = ""
		if m.state.Mode.IsVisual() {
			m.state.ExitVisual()
		}
		m.state.StatusMessage = ""
		return nil

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.updateViewportHeight()
		return nil

	case inputtypes.OpenHelpPagerAction:
		if m.program == nil {
			m.state.ShowHelp = true
			m.updateViewportHeight()
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent(string(m.engine.Options().Labels)))

	case inputtypes.QuitAction:
		m.engine.Reset()
		return tea.Quit
	}
	return nil
}

// startJump handles a trigger key
func (m *Model) startJump(reach jump.Reach) tea.Cmd {
	m.jumpFrom = m.state.Cursor
	s, ok := m.engine.Start(reach)
	if !ok {
		m.state.Operator = ""
		return m.setStatus("jump is disabled")
	}
	logrus.WithField("session", s.ID()).Debug("jump mode entered")
	m.state.StatusMessage = ""
	m.inputHandler.ChangeMode(inputtypes.ModeJump, m.inputContext())
	return nil
}

// handleJumpResult returns to normal input once the session is over and
// runs any pending operator over the jumped range
func (m *Model) handleJumpResult(res jump.Result) tea.Cmd {
	if res.State == jump.StateSearching {
		return nil
	}
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())

	var cmd tea.Cmd
	if res.Jumped && m.state.Operator != "" {
		cmd = m.applyOperator(m.state.Operator, m.jumpFrom, res.Target)
	}
	m.state.Operator = ""

	m.syncNavigatorState()
	m.state.Cursor, m.state.ViewportOffset = m.navigator.SetCursor(m.state.Cursor)

	if res.Notice != "" {
		return m.setStatus(res.Notice)
	}
	return cmd
}

// applyOperator runs an operator over the text between two positions,
// end exclusive, in either order
func (m *Model) applyOperator(op string, from, to domain.Position) tea.Cmd {
	if to.Before(from) {
		from, to = to, from
	}
	switch op {
	case "y":
		m.state.Register = m.buf.TextRange(from, to)
		m.state.Cursor = from
		return m.setStatus(fmt.Sprintf("yanked %d chars", len([]rune(m.state.Register))))
	case "d":
		m.state.Register = m.buf.Delete(from, to)
		m.state.Cursor = from
		return m.setStatus(fmt.Sprintf("deleted %d chars", len([]rune(m.state.Register))))
	}
	logrus.Warnf("unknown operator %q", op)
	return nil
}

// applySelectionOperator runs an operator over the visual selection
func (m *Model) applySelectionOperator(op string) tea.Cmd {
	from, to, ok := m.state.Selection()
	if !ok {
		return nil
	}
	if m.state.Mode == domain.ModeVisualLine {
		from.Col = 0
		if to.Line+1 < m.buf.LineCount() {
			to = domain.Position{Line: to.Line + 1}
		} else {
			to.Col = m.buf.LineLength(to.Line)
		}
	} else {
		to.Col++ // selection is inclusive
	}
	m.state.ExitVisual()

	cmd := m.applyOperator(op, from, to)
	m.syncNavigatorState()
	m.state.Cursor, m.state.ViewportOffset = m.navigator.SetCursor(m.state.Cursor)
	return cmd
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClearStatus(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline legend
			logrus.Warnf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
			m.updateViewportHeight()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}
	return m, nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// applyConfig installs a reloaded config. A running jump keeps its options;
// the next one uses the new ones.
func (m *Model) applyConfig(cfg *config.Config) {
	m.config = cfg
	m.engine.SetOptions(jump.OptionsFromConfig(cfg.Jump))
	m.renderer.SetStyles(views.NewStyles(cfg.Jump.Colors))
	m.viewModel.SetConfig(cfg)
	m.navigator.SetScrollOff(cfg.UISettings.ScrollOff)
	logrus.Debugf("applied config: labels=%q ignore_case=%v bidirectional=%v",
		cfg.Jump.Labels, cfg.Jump.IgnoreCase, cfg.Jump.Bidirectional)
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.StatusMessage = msg
	return handlers.ClearStatusAfter(msg)
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight)
}

func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = views.TextHeight(m.height, m.currentHelpView())
	m.syncNavigatorState()
	m.state.Cursor, m.state.ViewportOffset = m.navigator.SetCursor(m.state.Cursor)
}

func (m *Model) currentHelpView() string {
	if m.state.ShowHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// visibleRange reports the lines on screen to the jump engine
func (m *Model) visibleRange() domain.LineRange {
	m.syncNavigatorState()
	return m.navigator.VisibleRange()
}
