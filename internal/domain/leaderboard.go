package domain

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Points        int    `json:"points"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

type TeamLeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	MemberCount int    `json:"memberCount"`
}

type FeedbackEntry struct {
	EventID     string `json:"eventId"`
	EventName   string `json:"eventName"`
	UserName    string `json:"userName"`
	UserContact string `json:"userContact"`
	Feedback    string `json:"feedback"`
}

type DashboardStats struct {
	TotalUsers           int `json:"totalUsers"`
	TotalEvents          int `json:"totalEvents"`
	TotalCompletedEvents int `json:"totalCompletedEvents"`
	TotalPointsAwarded   int `json:"totalPointsAwarded"`
}

// UserSummary backs the shareable passport summary.
type UserSummary struct {
	FullName             string       `json:"fullName"`
	TeamName             string       `json:"teamName"`
	VisaPoints           int          `json:"visaPoints"`
	CompletedEvents      int          `json:"completedEvents"`
	TotalEvents          int          `json:"totalEvents"`
	Rank                 *int         `json:"rank,omitempty"`
	UnlockedAchievements int          `json:"unlockedAchievements"`
	TotalAchievements    int          `json:"totalAchievements"`
	LatestAchievement    *Achievement `json:"latestAchievement,omitempty"`
}

// SpinResult reports a prize wheel outcome.
type SpinResult struct {
	Spun           bool `json:"spun"`
	Prize          int  `json:"prize"`
	SpinsRemaining int  `json:"spinsRemaining"`
	VisaPoints     int  `json:"visaPoints"`
}
