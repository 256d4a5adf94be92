package healthify

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/healthifylite/healthify/internal/app"
	"github.com/healthifylite/healthify/internal/db"
	"github.com/healthifylite/healthify/internal/service"
)

// Swapped by tests for deterministic days and ids.
var (
	clock   = service.SystemClock
	entryID = service.NewEntryID
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withTracker loads persisted state into a tracker whose changes are
// written back through the blob store.
func withTracker(run func(*sql.DB, *service.Tracker) error) error {
	return withDB(func(sqldb *sql.DB) error {
		store := service.NewBlobStore(sqldb)
		state, err := service.LoadState(store, logger)
		if err != nil {
			return err
		}
		tracker := service.NewTracker(state, service.WithClock(clock), service.WithIDFunc(entryID))
		tracker.Subscribe(service.PersistOn(store, logger))
		tracker.EnsureToday()
		return run(sqldb, tracker)
	})
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// round matches the half-up display rounding of the dashboard.
func round(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return fmt.Sprintf("%.0f", r)
}
