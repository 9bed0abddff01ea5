package domain

import (
	"time"
)

// PointTransaction is one immutable entry of a user's points history.
type PointTransaction struct {
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func (pt PointTransaction) IsValid() bool {
	if pt.Reason == "" {
		return false
	}
	if pt.Timestamp.IsZero() {
		return false
	}
	return true
}

// SumPoints returns the total of every transaction in history.
func SumPoints(history []PointTransaction) int {
	total := 0
	for _, t := range history {
		total += t.Points
	}
	return total
}
