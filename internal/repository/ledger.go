package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/repository/dao"
)

// Storage keys of the persisted layout.
const (
	UsersKey        = "youthopia_users"
	CurrentUserKey  = "youthopia_currentUserContact"
	CurrentAdminKey = "youthopia_currentAdmin"
)

var ErrEntryNotFound = dao.ErrEntryNotFound

type LedgerDAO interface {
	FindByKey(ctx context.Context, key string) (dao.LedgerEntry, error)
	Apply(ctx context.Context, puts []dao.LedgerEntry, deletes []string) error
}

type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

func (r *LedgerRepository) Load(ctx context.Context) (domain.LedgerState, error) {
	var state domain.LedgerState

	raw, err := r.find(ctx, UsersKey)
	if err != nil {
		return domain.LedgerState{}, err
	}
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &state.Users); err != nil {
			return domain.LedgerState{}, fmt.Errorf("json.Unmarshal %s -> %w", UsersKey, err)
		}
	}

	if state.CurrentContact, err = r.find(ctx, CurrentUserKey); err != nil {
		return domain.LedgerState{}, err
	}
	if state.Admin, err = r.find(ctx, CurrentAdminKey); err != nil {
		return domain.LedgerState{}, err
	}

	return state, nil
}

// Save writes all three keys at once; an empty session value removes its key.
func (r *LedgerRepository) Save(ctx context.Context, state domain.LedgerState) error {
	users := state.Users
	if users == nil {
		users = []domain.User{}
	}

	encoded, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	puts := []dao.LedgerEntry{{Key: UsersKey, Value: string(encoded)}}
	var deletes []string

	for key, value := range map[string]string{
		CurrentUserKey:  state.CurrentContact,
		CurrentAdminKey: state.Admin,
	} {
		if value == "" {
			deletes = append(deletes, key)
			continue
		}
		puts = append(puts, dao.LedgerEntry{Key: key, Value: value})
	}

	if err = r.dao.Apply(ctx, puts, deletes); err != nil {
		return fmt.Errorf("r.dao.Apply -> %w", err)
	}

	return nil
}

func (r *LedgerRepository) find(ctx context.Context, key string) (string, error) {
	entry, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("r.dao.FindByKey %s -> %w", key, err)
	}

	return entry.Value, nil
}
