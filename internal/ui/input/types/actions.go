package types

import "leapview/internal/jump"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end", "linestart", "lineend"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Jump actions
type StartJumpAction struct {
	Reach jump.Reach
}

func (a StartJumpAction) Type() string { return "start_jump" }

// JumpKeyAction forwards one keystroke to the running jump session
type JumpKeyAction struct {
	Key jump.Key
}

func (a JumpKeyAction) Type() string { return "jump_key" }

type ToggleBidirectionalAction struct{}

func (a ToggleBidirectionalAction) Type() string { return "toggle_bidirectional" }

// Selection and operator actions
type ToggleVisualAction struct {
	Line bool // linewise visual
}

func (a ToggleVisualAction) Type() string { return "toggle_visual" }

type SetOperatorAction struct {
	Operator string // "d" or "y"
}

func (a SetOperatorAction) Type() string { return "set_operator" }

// ApplyOperatorAction applies the operator to the visual selection
type ApplyOperatorAction struct {
	Operator string
}

func (a ApplyOperatorAction) Type() string { return "apply_operator" }

// EscapeAction clears the pending operator or leaves visual mode
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
