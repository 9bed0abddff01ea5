package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

func TestNotifier(t *testing.T) {
	pub := &recordingPublisher{}
	n := NewNotifier(pub)

	n.addAchievements("1", nil)
	assert.Empty(t, pub.events)

	n.addAchievements("1", []domain.Achievement{{ID: "a"}})
	n.addAchievements("1", []domain.Achievement{{ID: "b"}, {ID: "c"}})

	earned := n.LastEarnedAchievements()
	require.Len(t, earned, 3)
	assert.Equal(t, "c", earned[2].ID)
	assert.Equal(t, 2, pub.count(EventAchievements))

	// Returned slices are copies.
	earned[0].ID = "changed"
	assert.Equal(t, "a", n.LastEarnedAchievements()[0].ID)

	n.notify("1", domain.Notification{Message: "one", Type: domain.NotificationInfo})
	n.notify("1", domain.Notification{Message: "two", Type: domain.NotificationError})
	assert.Equal(t, "two", n.LastNotification().Message)
	assert.Equal(t, "1", pub.events[len(pub.events)-1].Contact)

	n.ClearLastEarnedAchievements()
	n.ClearLastNotification()
	assert.Empty(t, n.LastEarnedAchievements())
	assert.Nil(t, n.LastNotification())
}

func TestNotifier_NoPublisher(t *testing.T) {
	n := NewNotifier(nil)

	assert.NotPanics(t, func() {
		n.addAchievements("1", []domain.Achievement{{ID: "a"}})
		n.notify("1", domain.Notification{Message: "hi"})
	})
	assert.Len(t, n.LastEarnedAchievements(), 1)
}
