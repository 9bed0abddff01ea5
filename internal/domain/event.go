package domain

import "time"

type Prizes struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Event is an immutable catalog entry.
type Event struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Points       int    `json:"points"`
	Participants string `json:"participants"` // a head count, or "No cap"
	Prizes       Prizes `json:"prizes"`
}

// UserEvent is a catalog event plus one user's progress on it.
type UserEvent struct {
	Event
	Registered  bool       `json:"registered,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
}

func (e UserEvent) Clone() UserEvent {
	c := e
	if e.CompletedAt != nil {
		at := *e.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

type EventPhase string

const (
	PhaseAwareness   EventPhase = "Awareness"
	PhaseEngagement  EventPhase = "Engagement"
	PhaseSeekingHelp EventPhase = "Seeking Help"
)

// CatalogEvent is what the public catalog endpoint serves.
type CatalogEvent struct {
	Event
	Phase EventPhase `json:"phase"`
}
