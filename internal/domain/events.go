package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventJumpStarted      EventType = "JumpStarted"
	EventMarkersUpdated   EventType = "MarkersUpdated"
	EventJumped           EventType = "Jumped"
	EventJumpCancelled    EventType = "JumpCancelled"
	EventNoPreviousSearch EventType = "NoPreviousSearch"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// JumpStartedEvent is emitted when a trigger key opens a jump session
type JumpStartedEvent struct {
	SessionID     string
	Bidirectional bool
	Cursor        Position
}

func (e JumpStartedEvent) Type() EventType { return EventJumpStarted }

// MarkersUpdatedEvent is emitted after every keystroke that changed the marker set
type MarkersUpdatedEvent struct {
	SessionID string
	Search    string
	Visible   int // markers carrying a label
	Matched   int // markers matching the search, labeled or not
}

func (e MarkersUpdatedEvent) Type() EventType { return EventMarkersUpdated }

// JumpedEvent is emitted when a session resolves to a cursor move
type JumpedEvent struct {
	SessionID string
	Search    string
	From      Position
	To        Position
}

func (e JumpedEvent) Type() EventType { return EventJumped }

// JumpCancelledEvent is emitted when a session ends without moving the cursor
type JumpCancelledEvent struct {
	SessionID string
	Reason    string
}

func (e JumpCancelledEvent) Type() EventType { return EventJumpCancelled }

// NoPreviousSearchEvent is emitted when repeat-last-search has nothing to repeat
type NoPreviousSearchEvent struct {
	SessionID string
}

func (e NoPreviousSearchEvent) Type() EventType { return EventNoPreviousSearch }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the configuration file changed on disk
// and was reloaded successfully. Config carries the new value as an
// interface{} so domain stays free of the config package.
type ConfigChangedEvent struct {
	Path   string
	Config interface{}
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
