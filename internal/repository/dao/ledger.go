package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrEntryExists   = errors.New("ledger entry already exists")
	ErrEntryNotFound = errors.New("ledger entry not found")
)

// LedgerEntry is one key of the ledger's key-value layout.
type LedgerEntry struct {
	Key   string `gorm:"column:entry_key;primaryKey;size:128"`
	Value string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

func (d *LedgerDAO) Insert(ctx context.Context, entry LedgerEntry) (LedgerEntry, error) {
	return insert(d.db.WithContext(ctx), entry)
}

func (d *LedgerDAO) Update(ctx context.Context, entry LedgerEntry) (LedgerEntry, error) {
	return update(d.db.WithContext(ctx), entry)
}

func (d *LedgerDAO) FindByKey(ctx context.Context, key string) (LedgerEntry, error) {
	var entry LedgerEntry

	result := d.db.WithContext(ctx).First(&entry, "entry_key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return LedgerEntry{}, ErrEntryNotFound
		}

		return LedgerEntry{}, result.Error
	}

	return entry, nil
}

// Apply writes every entry in puts and removes every key in deletes in one transaction.
func (d *LedgerDAO) Apply(ctx context.Context, puts []LedgerEntry, deletes []string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range puts {
			if err := put(tx, entry); err != nil {
				return fmt.Errorf("put %s -> %w", entry.Key, err)
			}
		}

		for _, key := range deletes {
			if err := tx.Delete(&LedgerEntry{}, "entry_key = ?", key).Error; err != nil {
				return fmt.Errorf("delete %s -> %w", key, err)
			}
		}

		return nil
	})
}

func put(tx *gorm.DB, entry LedgerEntry) error {
	_, err := insert(tx, entry)
	if errors.Is(err, ErrEntryExists) {
		_, err = update(tx, entry)
	}

	return err
}

func insert(tx *gorm.DB, entry LedgerEntry) (LedgerEntry, error) {
	// A failed statement aborts a postgres transaction, so the insert runs in a savepoint.
	err := tx.Transaction(func(sp *gorm.DB) error {
		return sp.Create(&entry).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return LedgerEntry{}, ErrEntryExists
		}

		return LedgerEntry{}, err
	}

	return entry, nil
}

func update(tx *gorm.DB, entry LedgerEntry) (LedgerEntry, error) {
	result := tx.Model(&LedgerEntry{}).
		Where("entry_key = ?", entry.Key).
		Updates(map[string]any{
			"value":      entry.Value,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return LedgerEntry{}, result.Error
	}
	if result.RowsAffected == 0 {
		return LedgerEntry{}, ErrEntryNotFound
	}

	return entry, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
