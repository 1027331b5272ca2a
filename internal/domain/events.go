package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventMenuRebuilt      EventType = "MenuRebuilt"
	EventStatusChanged    EventType = "StatusChanged"
	EventWidgetClosed     EventType = "WidgetClosed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after a commit sets the authoritative selection
type SelectionChangedEvent struct {
	Value string
	Text  string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// MenuRebuiltEvent is emitted when the candidate list is replaced
type MenuRebuiltEvent struct {
	Generation int
	Count      int
}

func (e MenuRebuiltEvent) Type() EventType { return EventMenuRebuilt }

// StatusChangedEvent carries the live-region text for assistive technology
type StatusChangedEvent struct {
	Status string
}

func (e StatusChangedEvent) Type() EventType { return EventStatusChanged }

// WidgetClosedEvent is emitted when the menu closes
type WidgetClosedEvent struct {
	Committed bool
}

func (e WidgetClosedEvent) Type() EventType { return EventWidgetClosed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	OptionsFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
