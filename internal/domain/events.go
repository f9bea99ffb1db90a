package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStatsLoaded EventType = "StatsLoaded"
	EventStatsFailed EventType = "StatsFailed"
	EventLinkCopied  EventType = "LinkCopied"
	EventCopyFailed  EventType = "CopyFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StatsLoadedEvent is emitted when archive statistics arrive
type StatsLoadedEvent struct {
	Stats Stats
}

func (e StatsLoadedEvent) Type() EventType { return EventStatsLoaded }

// StatsFailedEvent is emitted when the statistics request fails
type StatsFailedEvent struct {
	Err error
}

func (e StatsFailedEvent) Type() EventType { return EventStatsFailed }

// LinkCopiedEvent is emitted after a result link reached the clipboard
type LinkCopiedEvent struct {
	URL string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// CopyFailedEvent is emitted when the clipboard write fails
type CopyFailedEvent struct {
	URL string
	Err error
}

func (e CopyFailedEvent) Type() EventType { return EventCopyFailed }
