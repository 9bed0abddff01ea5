package service

import (
	"sync"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type EventKind string

const (
	EventNotification EventKind = "notification"
	EventAchievements EventKind = "achievements"
)

// Event is what the notifier fans out to realtime subscribers.
type Event struct {
	Kind         EventKind            `json:"kind"`
	Contact      string               `json:"contact"`
	Notification *domain.Notification `json:"notification,omitempty"`
	Achievements []domain.Achievement `json:"achievements,omitempty"`
}

type Publisher interface {
	Publish(event Event)
}

// Notifier holds the transient presentation state the ledger produces as a
// side effect of mutations: the pending achievement batch and the latest
// notification.
type Notifier struct {
	mu           sync.Mutex
	achievements []domain.Achievement
	notification *domain.Notification
	publisher    Publisher
}

func NewNotifier(publisher Publisher) *Notifier {
	return &Notifier{
		publisher: publisher,
	}
}

func (n *Notifier) addAchievements(contact string, earned []domain.Achievement) {
	if len(earned) == 0 {
		return
	}

	n.mu.Lock()
	n.achievements = append(n.achievements, earned...)
	n.mu.Unlock()

	if n.publisher != nil {
		n.publisher.Publish(Event{
			Kind:         EventAchievements,
			Contact:      contact,
			Achievements: append([]domain.Achievement(nil), earned...),
		})
	}
}

func (n *Notifier) notify(contact string, note domain.Notification) {
	n.mu.Lock()
	n.notification = &note
	n.mu.Unlock()

	if n.publisher != nil {
		n.publisher.Publish(Event{
			Kind:         EventNotification,
			Contact:      contact,
			Notification: &note,
		})
	}
}

func (n *Notifier) LastEarnedAchievements() []domain.Achievement {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]domain.Achievement{}, n.achievements...)
}

func (n *Notifier) ClearLastEarnedAchievements() {
	n.mu.Lock()
	n.achievements = nil
	n.mu.Unlock()
}

func (n *Notifier) LastNotification() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.notification == nil {
		return nil
	}
	note := *n.notification
	return &note
}

func (n *Notifier) ClearLastNotification() {
	n.mu.Lock()
	n.notification = nil
	n.mu.Unlock()
}
