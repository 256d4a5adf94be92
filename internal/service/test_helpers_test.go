package service_test

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/healthifylite/healthify/internal/db"
	"github.com/healthifylite/healthify/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "healthify.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seqIDs returns an id generator yielding id-1, id-2, ...
func seqIDs() service.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func localDay(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := service.ParseDateKey(key)
	if err != nil {
		t.Fatalf("parse %s: %v", key, err)
	}
	return d.Add(12 * time.Hour)
}

func newTestTracker(t *testing.T, today string) *service.Tracker {
	t.Helper()
	return service.NewTracker(service.DefaultState(),
		service.WithClock(service.FixedClock(localDay(t, today))),
		service.WithIDFunc(seqIDs()),
	)
}
