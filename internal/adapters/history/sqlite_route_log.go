package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"grid-route-client/internal/domain"
)

// SQLite-backed RouteLog for single-node deployments and local runs.
type SqliteRouteLog struct {
	DB *sql.DB
}

func NewSqliteRouteLog(db *sql.DB) *SqliteRouteLog {
	return &SqliteRouteLog{DB: db}
}

func (s *SqliteRouteLog) Record(ctx context.Context, q domain.RouteQuery) error {
	if s.DB == nil {
		return errors.New("route log: db is nil")
	}

	query := `
	INSERT INTO route_queries (source, target, found, distance, vertices, queried_at_ms)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, q.Source, q.Target, q.Found, q.Distance, q.Vertices, q.QueriedAt.UnixMilli()); err != nil {
		return fmt.Errorf("record route query %d -> %d: %w", q.Source, q.Target, err)
	}

	return nil
}

func (s *SqliteRouteLog) Recent(ctx context.Context, limit int) ([]domain.RouteQuery, error) {
	if s.DB == nil {
		return nil, errors.New("route log: db is nil")
	}

	// rowid breaks ties between records written in the same millisecond.
	query := `
	SELECT source, target, found, distance, vertices, queried_at_ms
	FROM route_queries
	ORDER BY queried_at_ms DESC, rowid DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent route queries: query route_queries table: %w", err)
	}
	defer rows.Close()

	return scanQueries(rows)
}
