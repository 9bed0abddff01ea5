package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&LedgerEntry{},
	)
}

// DropTables removes everything InitTables creates. Tests use it to reset a shared database.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&LedgerEntry{})
}
