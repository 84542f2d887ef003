package testutil

import (
	"io"
	"testing"

	"ClubRoster/internal/config"
	"ClubRoster/internal/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewLogger returns a logger that discards output.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewTestDB opens a fresh migrated in-memory sqlite database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    ":memory:",
	}, NewLogger())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
