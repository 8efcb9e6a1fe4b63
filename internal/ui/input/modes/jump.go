package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"leapview/internal/jump"
	"leapview/internal/ui/input/types"
)

// JumpMode forwards keystrokes to the running jump session. Typed and
// pasted text goes through as is; Enter, Esc and Backspace map to the
// session's named keys.
type JumpMode struct{}

func NewJumpMode() *JumpMode {
	return &JumpMode{}
}

func (m *JumpMode) Name() string {
	return "jump"
}

func (m *JumpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *JumpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	var key jump.Key
	switch msg.Type {
	case tea.KeyEnter:
		key = jump.KeyEnter
	case tea.KeyEsc, tea.KeyCtrlC:
		key = jump.KeyEsc
	case tea.KeyBackspace, tea.KeyCtrlH:
		key = jump.KeyBackspace
	case tea.KeySpace:
		key = " "
	case tea.KeyRunes:
		key = jump.Key(string(msg.Runes))
	default:
		// Other special keys mean nothing to a search
		return nil, true
	}
	return []types.Action{types.JumpKeyAction{Key: key}}, true
}
