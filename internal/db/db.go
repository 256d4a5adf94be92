package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const busyTimeoutMs = 5000

// Open returns a single-connection handle; every command runs its reads and
// writes in sequence on it.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("ping sqlite database %s: %w", path, err)
	}
	if _, err := sqldb.Exec(fmt.Sprintf(`PRAGMA busy_timeout = %d;`, busyTimeoutMs)); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return sqldb, nil
}
