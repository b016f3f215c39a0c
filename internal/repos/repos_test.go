package repos

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/logger"
)

// openTestDB builds an in-memory sqlite database with the same shape as the
// postgres tables. The uuid defaults are postgres-only, so the schema is
// declared by hand and tests assign IDs themselves. Shared cache keeps the
// database alive across gorm's pooled connections; the per-test name keeps
// tests isolated from each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	stmts := []string{
		`CREATE TABLE user_alert_states (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			alert_id TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at DATETIME NOT NULL,
			UNIQUE (user_id, alert_id)
		)`,
		`CREATE TABLE user_watchlist (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			neo_id TEXT NOT NULL,
			neo_name TEXT NOT NULL,
			snapshot TEXT,
			alert_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			added_at DATETIME NOT NULL,
			UNIQUE (user_id, neo_id)
		)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}
