package input

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"leapview/internal/ui/input/modes"
	"leapview/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeJump] = modes.NewJumpMode()

	return h
}

// HandleKey routes a key to the current mode and applies any mode changes
// it asks for. The remaining actions are returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.ChangeMode(changeMode.Mode, ctx)...)
			continue
		}
		allActions = append(allActions, action)
	}
	return allActions
}

// ChangeMode leaves the current mode and enters another, returning the
// actions produced by the exit and enter hooks
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	logrus.Debugf("input mode %s -> %s", h.modeName(h.currentMode), h.modeName(mode))
	h.currentMode = mode

	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

func (h *Handler) modeName(mode types.Mode) string {
	if handler := h.modes[mode]; handler != nil {
		return handler.Name()
	}
	return "unknown"
}
