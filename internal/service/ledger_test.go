package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/youthopia-api/internal/catalog"
	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type memoryStore struct {
	mu       sync.Mutex
	state    domain.LedgerState
	saves    int
	failSave error
}

func cloneState(st domain.LedgerState) domain.LedgerState {
	out := st
	out.Users = make([]domain.User, len(st.Users))
	for i, u := range st.Users {
		out.Users[i] = u.Clone()
	}
	return out
}

func (m *memoryStore) Load(context.Context) (domain.LedgerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneState(m.state), nil
}

func (m *memoryStore) Save(_ context.Context, st domain.LedgerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	m.state = cloneState(st)
	m.saves++
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(e Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func (p *recordingPublisher) count(kind EventKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type fixture struct {
	ledger *LedgerService
	store  *memoryStore
	clock  *clockwork.FakeClock
	pub    *recordingPublisher
}

// sequence returns an Intn that yields picks in order, then zeros.
func sequence(picks ...int) func(int) int {
	var mu sync.Mutex
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		if len(picks) == 0 {
			return 0
		}
		p := picks[0] % n
		picks = picks[1:]
		return p
	}
}

func newFixture(t *testing.T, mutate ...func(*LedgerConfig)) *fixture {
	t.Helper()

	f := &fixture{
		store: &memoryStore{},
		clock: clockwork.NewFakeClockAt(time.Date(2025, 11, 23, 9, 0, 0, 0, time.UTC)),
		pub:   &recordingPublisher{},
	}
	conf := LedgerConfig{
		RequireRegistration: true,
		Clock:               f.clock,
		Intn:                sequence(),
		BcryptCost:          bcrypt.MinCost,
		Publisher:           f.pub,
	}
	for _, m := range mutate {
		m(&conf)
	}

	l, err := NewLedgerService(context.Background(), f.store, conf)
	require.NoError(t, err)
	f.ledger = l

	return f
}

func (f *fixture) register(t *testing.T, contact, name string) domain.User {
	t.Helper()
	u, err := f.ledger.Register(context.Background(), domain.Registration{
		Contact:  contact,
		FullName: name,
		Class:    "FY",
		Stream:   "Arts",
		Password: "secret1",
		Photo:    "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) current(t *testing.T) domain.User {
	t.Helper()
	u, ok := f.ledger.CurrentUser()
	require.True(t, ok, "expected a logged in user")
	return u
}

func assertReconciles(t *testing.T, l *LedgerService) {
	t.Helper()
	for _, u := range l.AllUsers() {
		assert.Equal(t, domain.SumPoints(u.PointsHistory), u.VisaPoints, "points of %s do not match history", u.Contact)
	}
}

func withoutAchievement(id string) func(*LedgerConfig) {
	return func(c *LedgerConfig) {
		for _, a := range catalog.Achievements() {
			if a.ID != id {
				c.Achievements = append(c.Achievements, a)
			}
		}
	}
}

func countReason(history []domain.PointTransaction, reason string) int {
	n := 0
	for _, tx := range history {
		if tx.Reason == reason {
			n++
		}
	}
	return n
}

func TestScenarioA_RegisterWelcomeBonus(t *testing.T) {
	f := newFixture(t)

	u := f.register(t, "9999999999", "Asha")

	assert.Equal(t, 5, u.VisaPoints)
	require.Len(t, u.PointsHistory, 1)
	assert.Equal(t, 5, u.PointsHistory[0].Points)
	assert.Equal(t, "Welcome Bonus!", u.PointsHistory[0].Reason)
	assert.Equal(t, 0, u.SpinsAvailable)
	assert.Empty(t, u.Achievements)
	assert.True(t, u.Active)
	assert.Empty(t, u.Password)
	assert.Contains(t, Teams, u.TeamName)
	assert.Len(t, u.Events, catalog.EventCount())

	// Registration logs the new user in.
	assert.Equal(t, "9999999999", f.current(t).Contact)
	assert.Equal(t, "9999999999", f.store.state.CurrentContact)
}

func TestScenariosBC_RegisterAndComplete(t *testing.T) {
	// The literal arithmetic leaves out the first-step bonus, so it is removed from the catalog here.
	f := newFixture(t, withoutAchievement(catalog.AchievementFirstStep))
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	u := f.current(t)
	assert.Equal(t, 10, u.VisaPoints)
	assert.Len(t, u.PointsHistory, 2)
	assert.True(t, u.Event("evt-01").Registered)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))
	u = f.current(t)
	assert.Equal(t, 10+20+5, u.VisaPoints)
	assert.Equal(t, 1, u.SpinsAvailable)
	e := u.Event("evt-01")
	assert.True(t, e.Completed)
	require.NotNil(t, e.CompletedAt)
	assert.Equal(t, "Completed: Prism Panel (Debate) (+5 Bonus)", u.PointsHistory[len(u.PointsHistory)-1].Reason)
	assertReconciles(t, f.ledger)
}

func TestScenariosBC_FullCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	u := f.current(t)
	assert.Equal(t, 5+5+AchievementBonus, u.VisaPoints)
	assert.Equal(t, []string{catalog.AchievementFirstStep}, u.Achievements)
	assert.Equal(t, "Achievement: First Step", u.PointsHistory[2].Reason)

	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))
	u = f.current(t)
	assert.Equal(t, 35+25, u.VisaPoints)
	assert.Equal(t, 1, u.SpinsAvailable)
	assertReconciles(t, f.ledger)
}

func TestScenarioD_PointsHoarderOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "8888888888", "Ben")

	for _, id := range []string{"evt-01", "evt-02", "evt-03", "evt-04", "evt-06"} {
		require.NoError(t, f.ledger.RegisterForEvent(ctx, id))
		f.clock.Advance(time.Minute)
		require.NoError(t, f.ledger.CompleteEvent(ctx, id))
		assertReconciles(t, f.ledger)
	}

	u := f.current(t)
	assert.GreaterOrEqual(t, u.VisaPoints, 100)
	assert.Equal(t, 1, countReason(u.PointsHistory, "Achievement: Points Hoarder"))

	// Further mutations re-run evaluation without duplicating anything.
	require.NoError(t, f.ledger.AddPoints(ctx, 1, "Bonus round"))
	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-01", "great"))
	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))

	u = f.current(t)
	assert.Equal(t, 1, countReason(u.PointsHistory, "Achievement: Points Hoarder"))
	assert.Equal(t, 1, countReason(u.PointsHistory, "Achievement: Event Explorer"))
	assert.Equal(t, 1, countReason(u.PointsHistory, "Achievement: First Step"))
	assert.ElementsMatch(t, []string{
		catalog.AchievementFirstStep,
		catalog.AchievementPointsHoarder,
		catalog.AchievementEventExplorer,
	}, u.Achievements)
	// 5 welcome + 5*5 registrations + (20+25+15+20+20 + 5*5) completions + 3*25 achievements + 1
	assert.Equal(t, 5+25+125+75+1, u.VisaPoints)
	assertReconciles(t, f.ledger)
}

func TestScenarioE_DeactivatedLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "7777777777", "Chirag")
	require.NoError(t, f.ledger.Logout(ctx))

	require.NoError(t, f.ledger.UpdateUserStatus(ctx, "7777777777", false))

	err := f.ledger.Login(ctx, "7777777777", "secret1")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "account_deactivated", authErr.Reason)

	// A wrong password still reports bad credentials.
	assert.ErrorIs(t, f.ledger.Login(ctx, "7777777777", "nope"), ErrInvalidCredentials)

	require.NoError(t, f.ledger.UpdateUserStatus(ctx, "7777777777", true))
	assert.NoError(t, f.ledger.Login(ctx, "7777777777", "secret1"))
}

func TestScenarioF_TeamLeaderboard(t *testing.T) {
	f := newFixture(t, func(c *LedgerConfig) { c.Intn = sequence(0, 1, 0) })
	ctx := context.Background()

	f.register(t, "1111111111", "Asha") // Innovators
	require.NoError(t, f.ledger.AddPoints(ctx, 10, "Quiz"))
	f.register(t, "2222222222", "Ben") // Creators
	require.NoError(t, f.ledger.AddPoints(ctx, 40, "Quiz"))
	f.register(t, "3333333333", "Chirag") // Innovators

	teams := f.ledger.TeamLeaderboard()
	require.Len(t, teams, 2)

	assert.Equal(t, domain.TeamLeaderboardEntry{Rank: 1, Name: "Creators", Points: 45, MemberCount: 1}, teams[0])
	assert.Equal(t, domain.TeamLeaderboardEntry{Rank: 2, Name: "Innovators", Points: 20, MemberCount: 2}, teams[1])
}

func TestRegisterForEvent_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-02"))
	once := f.current(t)
	saves := f.store.saves

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-02"))
	twice := f.current(t)

	assert.Equal(t, once.VisaPoints, twice.VisaPoints)
	assert.Len(t, twice.PointsHistory, len(once.PointsHistory))
	assert.Equal(t, saves, f.store.saves, "a no-op must not persist")
}

func TestCompleteEvent_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")
	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-03"))

	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-03"))
	once := f.current(t)
	f.clock.Advance(time.Hour)
	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-03"))
	twice := f.current(t)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, twice.SpinsAvailable)
}

func TestCompleteEvent_RequiresRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("enforced", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "9999999999", "Asha")

		require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))
		u := f.current(t)
		assert.False(t, u.Event("evt-01").Completed)
		assert.Equal(t, 5, u.VisaPoints)
	})

	t.Run("relaxed", func(t *testing.T) {
		f := newFixture(t, func(c *LedgerConfig) { c.RequireRegistration = false })
		f.register(t, "9999999999", "Asha")

		require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))
		u := f.current(t)
		assert.True(t, u.Event("evt-01").Completed)
		assert.Equal(t, 5+25, u.VisaPoints)
	})
}

func TestMutations_NoCurrentUserIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	assert.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))
	assert.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-01", "x"))
	assert.NoError(t, f.ledger.AddPoints(ctx, 10, "x"))
	assert.NoError(t, f.ledger.UseSpin(ctx))

	assert.Equal(t, 0, f.store.saves)
	assert.Nil(t, f.ledger.Notifier().LastNotification())
}

func TestMutations_UnknownEventIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")
	before := f.current(t)

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-404"))
	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-404"))
	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-404", "hello"))

	assert.Equal(t, before, f.current(t))
}

func TestSubmitFeedback_OverwritesAndUnlocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-01", "good"))
	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-01", "great"))
	assert.Equal(t, "great", f.current(t).Event("evt-01").Feedback)

	note := f.ledger.Notifier().LastNotification()
	require.NotNil(t, note)
	assert.Equal(t, domain.NotificationInfo, note.Type)
	assert.Equal(t, "Thank you for your feedback on Prism Panel (Debate)!", note.Message)

	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-02", "nice"))
	require.NoError(t, f.ledger.SubmitFeedback(ctx, "evt-03", "fun"))

	u := f.current(t)
	assert.Contains(t, u.Achievements, catalog.AchievementFeedbackFanatic)
	assert.Equal(t, 5+25, u.VisaPoints)
}

func TestAddPoints_Signed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.AddPoints(ctx, 12, "Quiz"))
	require.NoError(t, f.ledger.AddPoints(ctx, -7, "Penalty"))

	u := f.current(t)
	assert.Equal(t, 10, u.VisaPoints)
	assert.Equal(t, -7, u.PointsHistory[2].Points)
	assert.Nil(t, f.ledger.Notifier().LastNotification(), "AddPoints emits no notification")
	assertReconciles(t, f.ledger)
}

func TestUseSpin(t *testing.T) {
	f := newFixture(t, func(c *LedgerConfig) { c.RequireRegistration = false })
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.UseSpin(ctx))
	assert.Equal(t, 0, f.current(t).SpinsAvailable)

	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-05"))
	require.NoError(t, f.ledger.UseSpin(ctx))
	assert.Equal(t, 0, f.current(t).SpinsAvailable)
}

func TestAchievements_BatchedOncePerMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.AddPoints(ctx, 70, "Head start"))
	assert.Empty(t, f.ledger.Notifier().LastEarnedAchievements())

	// +5 registration reaches 80, first-step lifts it to 105, which unlocks points-hoarder in the same pass.
	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))

	earned := f.ledger.Notifier().LastEarnedAchievements()
	require.Len(t, earned, 2)
	assert.Equal(t, catalog.AchievementFirstStep, earned[0].ID)
	assert.Equal(t, catalog.AchievementPointsHoarder, earned[1].ID)
	assert.Equal(t, 1, f.pub.count(EventAchievements))
	assert.Equal(t, 130, f.current(t).VisaPoints)

	f.ledger.Notifier().ClearLastEarnedAchievements()
	assert.Empty(t, f.ledger.Notifier().LastEarnedAchievements())
}

func TestAchievements_Monotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.AddPoints(ctx, 100, "Gift"))
	require.Contains(t, f.current(t).Achievements, catalog.AchievementPointsHoarder)

	// Dropping below the threshold never revokes the achievement.
	require.NoError(t, f.ledger.AddPoints(ctx, -120, "Correction"))
	u := f.current(t)
	assert.Contains(t, u.Achievements, catalog.AchievementPointsHoarder)
	assert.Equal(t, 1, countReason(u.PointsHistory, "Achievement: Points Hoarder"))
}

func TestNotification_ReplacesPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	require.NoError(t, f.ledger.CompleteEvent(ctx, "evt-01"))

	note := f.ledger.Notifier().LastNotification()
	require.NotNil(t, note)
	assert.Equal(t, "Event Completed! +25 Points", note.Message)
	assert.Equal(t, domain.NotificationSuccess, note.Type)
	assert.Equal(t, 2, f.pub.count(EventNotification))

	f.ledger.Notifier().ClearLastNotification()
	assert.Nil(t, f.ledger.Notifier().LastNotification())
}

func TestSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	require.NoError(t, f.ledger.Logout(ctx))
	_, ok := f.ledger.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, f.store.state.CurrentContact)
	require.NoError(t, f.ledger.Logout(ctx), "logout twice is a no-op")

	assert.ErrorIs(t, f.ledger.Login(ctx, "0000000000", "secret1"), ErrInvalidCredentials)
	assert.ErrorIs(t, f.ledger.Login(ctx, "9999999999", "wrong"), ErrInvalidCredentials)
	require.NoError(t, f.ledger.Login(ctx, "9999999999", "secret1"))
	assert.Equal(t, "9999999999", f.store.state.CurrentContact)

	_, err := f.ledger.Register(ctx, domain.Registration{Contact: "9999999999", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicateContact)
	assert.True(t, f.ledger.CheckUserExists("9999999999"))
	assert.False(t, f.ledger.CheckUserExists("1234567890"))
}

func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	assert.ErrorIs(t, f.ledger.ResetPassword(ctx, "0000000000", "new"), ErrUserNotFound)

	require.NoError(t, f.ledger.ResetPassword(ctx, "9999999999", "newpass9"))
	// The session is untouched by a reset.
	assert.Equal(t, "9999999999", f.current(t).Contact)

	require.NoError(t, f.ledger.Logout(ctx))
	assert.ErrorIs(t, f.ledger.Login(ctx, "9999999999", "secret1"), ErrInvalidCredentials)
	assert.NoError(t, f.ledger.Login(ctx, "9999999999", "newpass9"))
}

func TestAdminSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.ledger.AdminLogin(ctx, AdminContact, "guess")
	assert.ErrorIs(t, err, ErrInvalidAdminCredentials)
	_, ok := f.ledger.Admin()
	assert.False(t, ok)

	require.NoError(t, f.ledger.AdminLogin(ctx, AdminContact, AdminPassword))
	admin, ok := f.ledger.Admin()
	require.True(t, ok)
	assert.Equal(t, AdminUsername, admin.Username)
	assert.Equal(t, AdminUsername, f.store.state.Admin)

	// The admin session is independent of the user session.
	f.register(t, "9999999999", "Asha")
	require.NoError(t, f.ledger.Logout(ctx))
	_, ok = f.ledger.Admin()
	assert.True(t, ok)

	require.NoError(t, f.ledger.AdminLogout(ctx))
	assert.Empty(t, f.store.state.Admin)
}

func TestPersistFailure_RollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")
	before := f.current(t)

	f.store.failSave = errors.New("disk full")

	assert.Error(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	assert.Equal(t, before, f.current(t))
	assert.Empty(t, f.ledger.Notifier().LastEarnedAchievements())
	assert.Nil(t, f.ledger.Notifier().LastNotification())

	_, err := f.ledger.Register(ctx, domain.Registration{Contact: "8888888888", Password: "x"})
	assert.Error(t, err)
	assert.False(t, f.ledger.CheckUserExists("8888888888"))
	assert.Equal(t, "9999999999", f.current(t).Contact)

	assert.Error(t, f.ledger.Logout(ctx))
	assert.Equal(t, "9999999999", f.current(t).Contact)

	f.store.failSave = nil
	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	assertReconciles(t, f.ledger)
}

func TestRestart_RestoresState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")
	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))
	require.NoError(t, f.ledger.AdminLogin(ctx, AdminContact, AdminPassword))

	restarted, err := NewLedgerService(ctx, f.store, LedgerConfig{Clock: f.clock, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	u, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, f.current(t), u)
	_, ok = restarted.Admin()
	assert.True(t, ok)

	// New transactions still sort after everything already in history.
	require.NoError(t, restarted.AddPoints(ctx, 1, "After restart"))
	u, _ = restarted.CurrentUser()
	n := len(u.PointsHistory)
	assert.True(t, u.PointsHistory[n-1].Timestamp.After(u.PointsHistory[n-2].Timestamp))
}

func TestRestart_DanglingSessionDropped(t *testing.T) {
	store := &memoryStore{state: domain.LedgerState{CurrentContact: "ghost"}}

	l, err := NewLedgerService(context.Background(), store, LedgerConfig{})
	require.NoError(t, err)

	_, ok := l.CurrentUser()
	assert.False(t, ok)
}

func TestHistory_TimestampsStrictlyIncrease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	// The fake clock never moves here, yet every entry still gets its own instant.
	for i := 0; i < 5; i++ {
		require.NoError(t, f.ledger.AddPoints(ctx, 1, "tick"))
	}
	require.NoError(t, f.ledger.RegisterForEvent(ctx, "evt-01"))

	h := f.current(t).PointsHistory
	for i := 1; i < len(h); i++ {
		assert.True(t, h[i].Timestamp.After(h[i-1].Timestamp))
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	f := newFixture(t)
	f.register(t, "9999999999", "Asha")

	u := f.current(t)
	u.VisaPoints = 1000
	u.Events[0].Registered = true
	u.Achievements = append(u.Achievements, "forged")

	fresh := f.current(t)
	assert.Equal(t, 5, fresh.VisaPoints)
	assert.False(t, fresh.Events[0].Registered)
	assert.Empty(t, fresh.Achievements)
}

func TestConcurrentMutations_KeepInvariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "9999999999", "Asha")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.ledger.AddPoints(ctx, 2, "parallel")
			_ = f.ledger.RegisterForEvent(ctx, "evt-01")
			_ = f.ledger.OverallLeaderboard()
		}()
	}
	wg.Wait()

	u := f.current(t)
	assert.Equal(t, 1, countReason(u.PointsHistory, "Registered for Prism Panel (Debate)"))
	assert.Equal(t, 5+100+5+25+25, u.VisaPoints)
	assertReconciles(t, f.ledger)
}
