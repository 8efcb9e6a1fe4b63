package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leapview/internal/jump"
	"leapview/internal/ui/input/types"
)

const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.EscapeAction{}}, true

	case tea.KeyUp:
		return navigate("up"), true

	case tea.KeyDown:
		return navigate("down"), true

	case tea.KeyLeft:
		return navigate("left"), true

	case tea.KeyRight:
		return navigate("right"), true

	case tea.KeyPgUp:
		return navigate("pageup"), true

	case tea.KeyPgDown:
		return navigate("pagedown"), true

	case tea.KeyHome:
		return navigate("linestart"), true

	case tea.KeyEnd:
		return navigate("lineend"), true
	}

	switch key {
	case "j":
		return navigate("down"), true

	case "k":
		return navigate("up"), true

	case "h":
		return navigate("left"), true

	case "l":
		return navigate("right"), true

	case "0":
		return navigate("linestart"), true

	case "$":
		return navigate("lineend"), true

	case "ctrl+f":
		return navigate("pagedown"), true

	case "ctrl+b":
		return navigate("pageup"), true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return navigate("end"), true

	case "s":
		// Jump, landing on or past the match
		if !ctx.JumpEnabled() {
			return nil, false
		}
		return []types.Action{types.StartJumpAction{Reach: jump.ReachInclusive}}, true

	case "x":
		// Jump, stopping short of the match
		if !ctx.JumpEnabled() {
			return nil, false
		}
		return []types.Action{types.StartJumpAction{Reach: jump.ReachExclusive}}, true

	case "X":
		// Jump, stopping just past the match
		if !ctx.JumpEnabled() {
			return nil, false
		}
		return []types.Action{types.StartJumpAction{Reach: jump.ReachBeyond}}, true

	case "S":
		return []types.Action{types.ToggleBidirectionalAction{}}, true

	case "v":
		return []types.Action{types.ToggleVisualAction{}}, true

	case "V":
		return []types.Action{types.ToggleVisualAction{Line: true}}, true

	case "d", "y":
		if ctx.EditorMode().IsVisual() {
			return []types.Action{types.ApplyOperatorAction{Operator: key}}, true
		}
		return []types.Action{types.SetOperatorAction{Operator: key}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// An operator waits for a jump; anything else drops it
	if ctx.PendingOperator() != "" {
		return []types.Action{types.EscapeAction{}}, true
	}
	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
