package domain

import (
	"slices"
	"time"
)

type User struct {
	Contact        string             `json:"contact"`
	FullName       string             `json:"fullName"`
	Class          string             `json:"class"`
	Stream         string             `json:"stream"`
	Password       string             `json:"password,omitempty"`
	Photo          string             `json:"photo"`
	TeamName       string             `json:"teamName"`
	VisaPoints     int                `json:"visaPoints"`
	SpinsAvailable int                `json:"spinsAvailable"`
	Achievements   []string           `json:"achievements"`
	Active         bool               `json:"active"`
	Events         []UserEvent        `json:"events"`
	PointsHistory  []PointTransaction `json:"pointsHistory"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// Registration holds the details a participant supplies at signup.
type Registration struct {
	Contact  string
	FullName string
	Class    string
	Stream   string
	Password string
	Photo    string
}

type AdminUser struct {
	Username string `json:"username"`
}

// Clone returns a deep copy so callers never share slices with the ledger.
func (u User) Clone() User {
	c := u
	c.Achievements = slices.Clone(u.Achievements)
	c.PointsHistory = slices.Clone(u.PointsHistory)
	c.Events = make([]UserEvent, len(u.Events))
	for i, e := range u.Events {
		c.Events[i] = e.Clone()
	}
	return c
}

// Public is a copy safe to hand out of the service: the credential is dropped.
func (u User) Public() User {
	c := u.Clone()
	c.Password = ""
	return c
}

// Event returns the user's overlay for eventID, or nil.
func (u *User) Event(eventID string) *UserEvent {
	for i := range u.Events {
		if u.Events[i].ID == eventID {
			return &u.Events[i]
		}
	}
	return nil
}

func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (u *User) CompletedCount() int {
	n := 0
	for _, e := range u.Events {
		if e.Completed {
			n++
		}
	}
	return n
}

// Credit appends a transaction and moves VisaPoints by the same amount.
func (u *User) Credit(points int, reason string, at time.Time) {
	u.VisaPoints += points
	u.PointsHistory = append(u.PointsHistory, PointTransaction{
		Points:    points,
		Reason:    reason,
		Timestamp: at,
	})
}
