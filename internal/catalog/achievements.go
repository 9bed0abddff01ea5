package catalog

import "github.com/vietanh2810/youthopia-api/internal/domain"

const (
	AchievementFirstStep            = "first-step"
	AchievementEventExplorer        = "event-explorer"
	AchievementCommittedParticipant = "committed-participant"
	AchievementCreativeSoul         = "creative-soul"
	AchievementTeamPlayer           = "team-player"
	AchievementPointsHoarder        = "points-hoarder"
	AchievementCompletionist        = "completionist"
	AchievementFeedbackFanatic      = "feedback-fanatic"
)

var (
	creativeEventIDs = []string{"evt-05", "evt-16", "evt-18", "evt-19"}
	groupEventIDs    = []string{"evt-02", "evt-04", "evt-07", "evt-10"}
)

// Evaluation walks this slice in order, so a bonus awarded by an earlier
// entry is visible to the predicates after it.
var achievements = []domain.Achievement{
	{
		ID:          AchievementFirstStep,
		Name:        "First Step",
		Description: "Register for your first event.",
		Icon:        "zap",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			for _, e := range events {
				if e.Registered {
					return true
				}
			}
			return false
		},
	},
	{
		ID:          AchievementEventExplorer,
		Name:        "Event Explorer",
		Description: "Complete 5 different events.",
		Icon:        "star",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			return countCompleted(events) >= 5
		},
	},
	{
		ID:          AchievementCommittedParticipant,
		Name:        "Committed Participant",
		Description: "Complete 10 different events.",
		Icon:        "award",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			return countCompleted(events) >= 10
		},
	},
	{
		ID:          AchievementCreativeSoul,
		Name:        "Creative Soul",
		Description: "Complete all creative arts events.",
		Icon:        "edit",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			return allCompleted(events, creativeEventIDs)
		},
	},
	{
		ID:          AchievementTeamPlayer,
		Name:        "Team Player",
		Description: "Participate in all group events.",
		Icon:        "users",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			return allCompleted(events, groupEventIDs)
		},
	},
	{
		ID:          AchievementPointsHoarder,
		Name:        "Points Hoarder",
		Description: "Accumulate 100 VISA Points.",
		Icon:        "gift",
		IsUnlocked: func(user *domain.User, _ []domain.UserEvent) bool {
			return user.VisaPoints >= 100
		},
	},
	{
		ID:          AchievementCompletionist,
		Name:        "Completionist!",
		Description: "Complete all available events.",
		Icon:        "sun",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			if len(events) == 0 {
				return false
			}
			return countCompleted(events) == len(events)
		},
	},
	{
		ID:          AchievementFeedbackFanatic,
		Name:        "Feedback Fanatic",
		Description: "Provide feedback for 3 events.",
		Icon:        "heart",
		IsUnlocked: func(_ *domain.User, events []domain.UserEvent) bool {
			n := 0
			for _, e := range events {
				if e.Feedback != "" {
					n++
				}
			}
			return n >= 3
		},
	},
}

// Achievements returns the catalog in evaluation order.
func Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), achievements...)
}

func FindAchievement(id string) (domain.Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}

func countCompleted(events []domain.UserEvent) int {
	n := 0
	for _, e := range events {
		if e.Completed {
			n++
		}
	}
	return n
}

func allCompleted(events []domain.UserEvent, ids []string) bool {
	for _, id := range ids {
		found := false
		for _, e := range events {
			if e.ID == id {
				if !e.Completed {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
