package testhelpers

import (
	"fmt"
	"regexp"
	"testing"

	"hirehub/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	openSQLite = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{
			TranslateError:                           true,
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   logger.Discard,
		})
	}
	migrateSchema = func(db *gorm.DB) error { return db.AutoMigrate(models.Tables()...) }
	dropTableFn   = func(db *gorm.DB, table any) error { return db.Migrator().DropTable(table) }

	unsafeDSNChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := unsafeDSNChars.ReplaceAllString(t.Name(), "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := openSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := migrateSchema(db); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// DropTable removes the table of model to force repository errors.
func DropTable(t *testing.T, db *gorm.DB, model any) {
	t.Helper()
	if err := dropTableFn(db, model); err != nil {
		panic(fmt.Sprintf("failed to drop table: %v", err))
	}
}
