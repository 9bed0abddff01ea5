package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

func TestNewUserEvents_IsIndependentCopy(t *testing.T) {
	a := NewUserEvents()
	b := NewUserEvents()
	require.Len(t, a, EventCount())

	a[0].Registered = true
	a[0].Name = "changed"

	assert.False(t, b[0].Registered)
	orig, ok := FindEvent(a[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", orig.Name)
}

func TestPhase(t *testing.T) {
	tests := []struct {
		id   string
		want domain.EventPhase
	}{
		{"evt-03", domain.PhaseAwareness},
		{"evt-01", domain.PhaseEngagement},
		{"evt-15", domain.PhaseSeekingHelp},
		{"evt-99", domain.PhaseEngagement},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Phase(tt.id))
		})
	}
}

func TestAchievements_Predicates(t *testing.T) {
	complete := func(events []domain.UserEvent, ids ...string) {
		for i := range events {
			for _, id := range ids {
				if events[i].ID == id {
					events[i].Registered = true
					events[i].Completed = true
				}
			}
		}
	}

	tests := []struct {
		name  string
		id    string
		setup func(u *domain.User)
		want  bool
	}{
		{"nothing registered", AchievementFirstStep, func(u *domain.User) {}, false},
		{"one registered", AchievementFirstStep, func(u *domain.User) { u.Events[3].Registered = true }, true},
		{"four completed", AchievementEventExplorer, func(u *domain.User) {
			complete(u.Events, "evt-01", "evt-02", "evt-03", "evt-04")
		}, false},
		{"five completed", AchievementEventExplorer, func(u *domain.User) {
			complete(u.Events, "evt-01", "evt-02", "evt-03", "evt-04", "evt-05")
		}, true},
		{"creative partial", AchievementCreativeSoul, func(u *domain.User) {
			complete(u.Events, "evt-05", "evt-16", "evt-18")
		}, false},
		{"creative all", AchievementCreativeSoul, func(u *domain.User) {
			complete(u.Events, creativeEventIDs...)
		}, true},
		{"group all", AchievementTeamPlayer, func(u *domain.User) {
			complete(u.Events, groupEventIDs...)
		}, true},
		{"99 points", AchievementPointsHoarder, func(u *domain.User) { u.VisaPoints = 99 }, false},
		{"100 points", AchievementPointsHoarder, func(u *domain.User) { u.VisaPoints = 100 }, true},
		{"all completed", AchievementCompletionist, func(u *domain.User) {
			for i := range u.Events {
				u.Events[i].Completed = true
			}
		}, true},
		{"three feedbacks", AchievementFeedbackFanatic, func(u *domain.User) {
			u.Events[0].Feedback = "great"
			u.Events[1].Feedback = "ok"
			u.Events[2].Feedback = "loved it"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &domain.User{Events: NewUserEvents()}
			tt.setup(u)

			a, ok := FindAchievement(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, a.IsUnlocked(u, u.Events))
			// Predicates are pure: evaluating twice gives the same answer.
			assert.Equal(t, tt.want, a.IsUnlocked(u, u.Events))
		})
	}
}
