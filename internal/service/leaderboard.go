package service

import (
	"cmp"
	"slices"

	"github.com/vietanh2810/youthopia-api/internal/catalog"
	"github.com/vietanh2810/youthopia-api/internal/domain"
)

// The derivations below are recomputed from the ledger on every call and
// never cached.

// OverallLeaderboard ranks every user by points. Equal totals keep
// registration order.
func (s *LedgerService) OverallLeaderboard() []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.overallLeaderboard()
}

func (s *LedgerService) overallLeaderboard() []domain.LeaderboardEntry {
	ranked := make([]*domain.User, len(s.users))
	for i := range s.users {
		ranked[i] = &s.users[i]
	}
	slices.SortStableFunc(ranked, func(a, b *domain.User) int {
		return cmp.Compare(b.VisaPoints, a.VisaPoints)
	})

	entries := make([]domain.LeaderboardEntry, len(ranked))
	for i, u := range ranked {
		entries[i] = domain.LeaderboardEntry{
			Rank:          i + 1,
			Name:          u.FullName,
			Contact:       u.Contact,
			Points:        u.VisaPoints,
			IsCurrentUser: u.Contact == s.current,
		}
	}

	return entries
}

// TeamLeaderboard sums member points per team. Equal totals are ordered by team name.
func (s *LedgerService) TeamLeaderboard() []domain.TeamLeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName := make(map[string]*domain.TeamLeaderboardEntry)
	for _, u := range s.users {
		team, ok := byName[u.TeamName]
		if !ok {
			team = &domain.TeamLeaderboardEntry{Name: u.TeamName}
			byName[u.TeamName] = team
		}
		team.Points += u.VisaPoints
		team.MemberCount++
	}

	teams := make([]domain.TeamLeaderboardEntry, 0, len(byName))
	for _, team := range byName {
		teams = append(teams, *team)
	}
	slices.SortFunc(teams, func(a, b domain.TeamLeaderboardEntry) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for i := range teams {
		teams[i].Rank = i + 1
	}

	return teams
}

// LeaderboardForEvent orders the users who completed eventID by completion
// time, earliest first.
func (s *LedgerService) LeaderboardForEvent(eventID string) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	type finisher struct {
		user *domain.User
		at   int64
	}

	var finishers []finisher
	for i := range s.users {
		u := &s.users[i]
		e := u.Event(eventID)
		if e == nil || !e.Completed || e.CompletedAt == nil {
			continue
		}
		finishers = append(finishers, finisher{user: u, at: e.CompletedAt.UnixNano()})
	}
	slices.SortStableFunc(finishers, func(a, b finisher) int {
		return cmp.Compare(a.at, b.at)
	})

	entries := make([]domain.LeaderboardEntry, len(finishers))
	for i, f := range finishers {
		entries[i] = domain.LeaderboardEntry{
			Rank:          i + 1,
			Name:          f.user.FullName,
			Contact:       f.user.Contact,
			Points:        f.user.VisaPoints,
			IsCurrentUser: f.user.Contact == s.current,
		}
	}

	return entries
}

// CurrentUserRank is nil when nobody is logged in.
func (s *LedgerService) CurrentUserRank() *int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentUserRank()
}

func (s *LedgerService) currentUserRank() *int {
	if s.currentUser() == nil {
		return nil
	}
	for _, entry := range s.overallLeaderboard() {
		if entry.IsCurrentUser {
			rank := entry.Rank
			return &rank
		}
	}

	return nil
}

func (s *LedgerService) DashboardStats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		TotalUsers:  len(s.users),
		TotalEvents: catalog.EventCount(),
	}
	for i := range s.users {
		stats.TotalCompletedEvents += s.users[i].CompletedCount()
		stats.TotalPointsAwarded += s.users[i].VisaPoints
	}

	return stats
}

func (s *LedgerService) AllFeedback() []domain.FeedbackEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback := []domain.FeedbackEntry{}
	for _, u := range s.users {
		for _, e := range u.Events {
			if e.Feedback == "" {
				continue
			}
			feedback = append(feedback, domain.FeedbackEntry{
				EventID:     e.ID,
				EventName:   e.Name,
				UserName:    u.FullName,
				UserContact: u.Contact,
				Feedback:    e.Feedback,
			})
		}
	}

	return feedback
}

// AllUsers returns every record in registration order, credentials stripped.
func (s *LedgerService) AllUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, len(s.users))
	for i, u := range s.users {
		users[i] = u.Public()
	}

	return users
}

// MasterEvents is a fresh copy of the catalog; callers may modify it freely.
func (s *LedgerService) MasterEvents() []domain.Event {
	return catalog.Events()
}

// Events returns the current user's event overlay, or nil when logged out.
func (s *LedgerService) Events() []domain.UserEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser()
	if u == nil {
		return nil
	}

	return u.Clone().Events
}

// Summary backs the shareable passport card of the current user.
func (s *LedgerService) Summary() (domain.UserSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser()
	if u == nil {
		return domain.UserSummary{}, false
	}

	summary := domain.UserSummary{
		FullName:             u.FullName,
		TeamName:             u.TeamName,
		VisaPoints:           u.VisaPoints,
		CompletedEvents:      u.CompletedCount(),
		TotalEvents:          len(u.Events),
		Rank:                 s.currentUserRank(),
		UnlockedAchievements: len(u.Achievements),
		TotalAchievements:    len(s.conf.Achievements),
	}
	if n := len(u.Achievements); n > 0 {
		for _, a := range s.conf.Achievements {
			if a.ID == u.Achievements[n-1] {
				latest := a
				summary.LatestAchievement = &latest
				break
			}
		}
	}

	return summary, true
}
