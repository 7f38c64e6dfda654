package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventFigureDraw   EventType = "figureDraw"
	EventGroupDraw    EventType = "groupDraw"
	EventAnimatorDraw EventType = "animatorDraw"
	EventLoop         EventType = "loop"   // playback resumed
	EventNoLoop       EventType = "noLoop" // playback paused
)

// Event is published after a unit is committed or playback toggles.
// Delivery is fire-and-forget.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	UnitID    string    `json:"unit_id,omitempty"`
	Timeline  string    `json:"timeline,omitempty"`
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, unitID string) Event {
	return Event{Timestamp: time.Now(), Type: t, UnitID: unitID}
}
