package history

import (
	"database/sql"
	"errors"
	"fmt"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// Initialize the route_queries table. The DDL is valid for both SQLite and
// PostgreSQL.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteQueriesQuery := `
	CREATE TABLE IF NOT EXISTS route_queries (
		source BIGINT NOT NULL,
		target BIGINT NOT NULL,
		found BOOLEAN NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		vertices INTEGER NOT NULL,
		queried_at_ms BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_queries_queried_at
	ON route_queries(queried_at_ms);
	`

	statements := []string{
		createRouteQueriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// clampLimit applies the default and the upper bound to a Recent limit.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}
