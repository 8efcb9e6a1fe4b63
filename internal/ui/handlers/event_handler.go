package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"leapview/internal/config"
	"leapview/internal/eventbus"
	"leapview/internal/ui/state"
)

// StatusTimeout is how long transient status messages stay up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status message when it is still the one shown
type ClearStatusMsg struct {
	Message string
}

// ClearStatusAfter schedules clearing a status message
func ClearStatusAfter(message string) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: message}
	})
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state       *state.ViewerState
	applyConfig func(*config.Config)
}

// NewEventHandler creates a new event handler. applyConfig is called with
// every successfully reloaded config.
func NewEventHandler(viewerState *state.ViewerState, applyConfig func(*config.Config)) *EventHandler {
	return &EventHandler{
		state:       viewerState,
		applyConfig: applyConfig,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ConfigChangedEvent:
		cfg, ok := e.Config.(*config.Config)
		if !ok || cfg == nil {
			logrus.Warnf("config change from %s carried %T", e.Path, e.Config)
			return nil
		}
		h.applyConfig(cfg)
		return h.setStatus("config reloaded")

	case eventbus.ConfigSavedEvent:
		return h.setStatus(fmt.Sprintf("config written to %s", e.Path))

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return h.setStatus(msg)
	}
	return nil
}

func (h *EventHandler) setStatus(msg string) tea.Cmd {
	h.state.StatusMessage = msg
	return ClearStatusAfter(msg)
}

// HandleClearStatus clears the status if it has not been replaced meanwhile
func (h *EventHandler) HandleClearStatus(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Message {
		h.state.StatusMessage = ""
	}
}
