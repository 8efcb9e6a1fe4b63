package input

import (
	"leapview/internal/domain"
	"leapview/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.ViewerState
	Enabled bool
}

// EditorMode returns the viewer's editing mode
func (c *ModelContext) EditorMode() domain.Mode {
	return c.State.Mode
}

// PendingOperator returns the operator waiting for a motion
func (c *ModelContext) PendingOperator() string {
	return c.State.Operator
}

// JumpEnabled reports whether the trigger keys start a jump
func (c *ModelContext) JumpEnabled() bool {
	return c.Enabled
}
