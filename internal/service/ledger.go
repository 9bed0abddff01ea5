package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/youthopia-api/internal/catalog"
	"github.com/vietanh2810/youthopia-api/internal/domain"
)

const (
	WelcomeBonus      = 5
	RegistrationBonus = 5
	CompletionBonus   = 5
	AchievementBonus  = 25

	AdminContact  = "9321549715"
	AdminPassword = "admin"
	AdminUsername = "Admin"
)

var Teams = []string{"Innovators", "Creators", "Explorers", "Pioneers"}

var (
	ErrInvalidCredentials      = domain.ErrInvalidCredentials
	ErrAccountDeactivated      = domain.ErrAccountDeactivated
	ErrInvalidAdminCredentials = domain.ErrInvalidAdminCredentials
	ErrDuplicateContact        = domain.ErrDuplicateContact
	ErrUserNotFound            = domain.ErrUserNotFound
)

type LedgerStore interface {
	Load(ctx context.Context) (domain.LedgerState, error)
	Save(ctx context.Context, state domain.LedgerState) error
}

type LedgerConfig struct {
	// RequireRegistration makes CompleteEvent a no-op for events the user never registered for.
	RequireRegistration bool
	Clock               clockwork.Clock
	// Intn picks a uniformly random index in [0, n). It drives team assignment and the prize wheel.
	Intn       func(n int) int
	BcryptCost int
	Publisher  Publisher
	// Achievements defaults to the program catalog.
	Achievements []domain.Achievement
}

// LedgerService is the single authority over user progress. Every operation
// runs under one mutex: read, mutate, evaluate achievements, persist, notify.
type LedgerService struct {
	mu    sync.Mutex
	store LedgerStore
	conf  LedgerConfig

	users   []domain.User
	index   map[string]int
	current string
	admin   string

	lastStamp time.Time
	notifier  *Notifier
}

// NewLedgerService loads the persisted state and restores both sessions.
// A stored session pointer that names no user is dropped.
func NewLedgerService(ctx context.Context, store LedgerStore, conf LedgerConfig) (*LedgerService, error) {
	if conf.Clock == nil {
		conf.Clock = clockwork.NewRealClock()
	}
	if conf.Intn == nil {
		conf.Intn = rand.IntN
	}
	if conf.BcryptCost == 0 {
		conf.BcryptCost = bcrypt.DefaultCost
	}
	if conf.Achievements == nil {
		conf.Achievements = catalog.Achievements()
	}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Load -> %w", err)
	}

	s := &LedgerService{
		store:    store,
		conf:     conf,
		users:    state.Users,
		index:    make(map[string]int, len(state.Users)),
		admin:    state.Admin,
		notifier: NewNotifier(conf.Publisher),
	}
	for i, u := range s.users {
		s.index[u.Contact] = i
		for _, t := range u.PointsHistory {
			if t.Timestamp.After(s.lastStamp) {
				s.lastStamp = t.Timestamp
			}
		}
	}
	if _, ok := s.index[state.CurrentContact]; ok {
		s.current = state.CurrentContact
	}

	zap.L().Info("ledger loaded",
		zap.Int("users", len(s.users)),
		zap.Bool("user_session", s.current != ""),
		zap.Bool("admin_session", s.admin != ""),
	)

	return s, nil
}

func (s *LedgerService) Notifier() *Notifier {
	return s.notifier
}

// now returns a strictly increasing instant so history order never ties.
func (s *LedgerService) now() time.Time {
	t := s.conf.Clock.Now()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = t

	return t
}

func (s *LedgerService) persist(ctx context.Context) error {
	err := s.store.Save(ctx, domain.LedgerState{
		Users:          s.users,
		CurrentContact: s.current,
		Admin:          s.admin,
	})
	if err != nil {
		zap.L().Error("ledger persist failed", zap.Error(err))
		return fmt.Errorf("s.store.Save -> %w", err)
	}

	return nil
}

func (s *LedgerService) currentUser() *domain.User {
	if s.current == "" {
		return nil
	}
	i, ok := s.index[s.current]
	if !ok {
		return nil
	}

	return &s.users[i]
}

func (s *LedgerService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.conf.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}

// --- sessions ---

func (s *LedgerService) Login(ctx context.Context, contact, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[contact]
	if !ok {
		return ErrInvalidCredentials
	}
	u := &s.users[i]
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	if !u.Active {
		return ErrAccountDeactivated
	}

	prev := s.current
	s.current = contact
	if err := s.persist(ctx); err != nil {
		s.current = prev
		return err
	}

	zap.L().Debug("user logged in", zap.String("contact", contact))

	return nil
}

func (s *LedgerService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return nil
	}

	prev := s.current
	s.current = ""
	if err := s.persist(ctx); err != nil {
		s.current = prev
		return err
	}

	return nil
}

// Register creates a participant record and logs it in.
func (s *LedgerService) Register(ctx context.Context, details domain.Registration) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[details.Contact]; ok {
		return domain.User{}, ErrDuplicateContact
	}

	hash, err := s.hash(details.Password)
	if err != nil {
		return domain.User{}, err
	}

	at := s.now()
	u := domain.User{
		Contact:        details.Contact,
		FullName:       details.FullName,
		Class:          details.Class,
		Stream:         details.Stream,
		Password:       hash,
		Photo:          details.Photo,
		TeamName:       Teams[s.conf.Intn(len(Teams))],
		SpinsAvailable: 0,
		Achievements:   []string{},
		Active:         true,
		Events:         catalog.NewUserEvents(),
		CreatedAt:      at,
	}
	u.Credit(WelcomeBonus, "Welcome Bonus!", at)

	prev := s.current
	s.users = append(s.users, u)
	s.index[u.Contact] = len(s.users) - 1
	s.current = u.Contact

	if err = s.persist(ctx); err != nil {
		s.users = s.users[:len(s.users)-1]
		delete(s.index, u.Contact)
		s.current = prev
		return domain.User{}, err
	}

	zap.L().Info("user registered", zap.String("contact", u.Contact), zap.String("team", u.TeamName))

	return u.Public(), nil
}

func (s *LedgerService) CheckUserExists(contact string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index[contact]
	return ok
}

func (s *LedgerService) ResetPassword(ctx context.Context, contact, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[contact]
	if !ok {
		return ErrUserNotFound
	}

	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}

	prev := s.users[i].Password
	s.users[i].Password = hash
	if err = s.persist(ctx); err != nil {
		s.users[i].Password = prev
		return err
	}

	return nil
}

func (s *LedgerService) AdminLogin(ctx context.Context, contact, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contact != AdminContact || password != AdminPassword {
		return ErrInvalidAdminCredentials
	}

	prev := s.admin
	s.admin = AdminUsername
	if err := s.persist(ctx); err != nil {
		s.admin = prev
		return err
	}

	return nil
}

func (s *LedgerService) AdminLogout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == "" {
		return nil
	}

	prev := s.admin
	s.admin = ""
	if err := s.persist(ctx); err != nil {
		s.admin = prev
		return err
	}

	return nil
}

// CurrentUser returns a copy of the logged-in user without its credential.
func (s *LedgerService) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser()
	if u == nil {
		return domain.User{}, false
	}

	return u.Public(), true
}

func (s *LedgerService) Admin() (domain.AdminUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == "" {
		return domain.AdminUser{}, false
	}

	return domain.AdminUser{Username: s.admin}, true
}

// --- progress ---

// mutation applies one change to the current user. It reports whether
// anything changed and the notification to emit afterwards.
type mutation func(u *domain.User) (bool, *domain.Notification)

// mutateCurrent runs m on the current user, evaluates achievements, persists,
// then notifies. Without a current user, or when m changes nothing, it is a
// silent no-op. A failed save restores the user as it was before m.
func (s *LedgerService) mutateCurrent(ctx context.Context, op string, m mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser()
	if u == nil {
		return nil
	}

	before := u.Clone()
	changed, note := m(u)
	if !changed {
		return nil
	}

	earned := s.evaluateAchievements(u)

	if err := s.persist(ctx); err != nil {
		*u = before
		return err
	}

	zap.L().Debug("ledger mutation",
		zap.String("op", op),
		zap.String("contact", u.Contact),
		zap.Int("visa_points", u.VisaPoints),
		zap.Int("new_achievements", len(earned)),
	)

	s.notifier.addAchievements(u.Contact, earned)
	if note != nil {
		s.notifier.notify(u.Contact, *note)
	}

	return nil
}

// evaluateAchievements walks the catalog in order and unlocks every
// achievement whose predicate now holds. Already unlocked ids are skipped.
func (s *LedgerService) evaluateAchievements(u *domain.User) []domain.Achievement {
	var earned []domain.Achievement

	for _, a := range s.conf.Achievements {
		if u.HasAchievement(a.ID) {
			continue
		}
		if !a.IsUnlocked(u, u.Events) {
			continue
		}

		u.Achievements = append(u.Achievements, a.ID)
		u.Credit(AchievementBonus, "Achievement: "+a.Name, s.now())
		earned = append(earned, a)
	}

	return earned
}

func (s *LedgerService) RegisterForEvent(ctx context.Context, eventID string) error {
	return s.mutateCurrent(ctx, "register_for_event", func(u *domain.User) (bool, *domain.Notification) {
		e := u.Event(eventID)
		if e == nil || e.Registered {
			return false, nil
		}

		e.Registered = true
		u.Credit(RegistrationBonus, "Registered for "+e.Name, s.now())

		return true, &domain.Notification{
			Message: fmt.Sprintf("Successfully Registered! +%d Points", RegistrationBonus),
			Type:    domain.NotificationSuccess,
		}
	})
}

func (s *LedgerService) CompleteEvent(ctx context.Context, eventID string) error {
	return s.mutateCurrent(ctx, "complete_event", func(u *domain.User) (bool, *domain.Notification) {
		e := u.Event(eventID)
		if e == nil || e.Completed {
			return false, nil
		}
		if s.conf.RequireRegistration && !e.Registered {
			return false, nil
		}

		at := s.now()
		e.Completed = true
		e.CompletedAt = &at

		total := e.Points + CompletionBonus
		u.Credit(total, fmt.Sprintf("Completed: %s (+%d Bonus)", e.Name, CompletionBonus), at)
		u.SpinsAvailable++

		return true, &domain.Notification{
			Message: fmt.Sprintf("Event Completed! +%d Points", total),
			Type:    domain.NotificationSuccess,
		}
	})
}

// SubmitFeedback overwrites any earlier feedback for the event.
func (s *LedgerService) SubmitFeedback(ctx context.Context, eventID, feedback string) error {
	return s.mutateCurrent(ctx, "submit_feedback", func(u *domain.User) (bool, *domain.Notification) {
		e := u.Event(eventID)
		if e == nil {
			return false, nil
		}

		e.Feedback = feedback

		return true, &domain.Notification{
			Message: fmt.Sprintf("Thank you for your feedback on %s!", e.Name),
			Type:    domain.NotificationInfo,
		}
	})
}

// AddPoints records a signed adjustment. It emits no notification of its own.
func (s *LedgerService) AddPoints(ctx context.Context, points int, reason string) error {
	return s.mutateCurrent(ctx, "add_points", func(u *domain.User) (bool, *domain.Notification) {
		u.Credit(points, reason, s.now())
		return true, nil
	})
}

func (s *LedgerService) UseSpin(ctx context.Context) error {
	return s.mutateCurrent(ctx, "use_spin", func(u *domain.User) (bool, *domain.Notification) {
		if u.SpinsAvailable <= 0 {
			return false, nil
		}

		u.SpinsAvailable--
		return true, nil
	})
}

// UpdateUserStatus is the admin switch behind account deactivation. A
// deactivated user who is already logged in keeps the session until logout.
func (s *LedgerService) UpdateUserStatus(ctx context.Context, contact string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[contact]
	if !ok {
		return ErrUserNotFound
	}

	prev := s.users[i].Active
	s.users[i].Active = active
	if err := s.persist(ctx); err != nil {
		s.users[i].Active = prev
		return err
	}

	zap.L().Info("user status updated", zap.String("contact", contact), zap.Bool("active", active))

	return nil
}
