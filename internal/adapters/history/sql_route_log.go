package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"time"
)

// SQLRouteLog is a PostgreSQL-backed RouteLog (pgx stdlib driver).
type SQLRouteLog struct {
	DB *sql.DB
}

func NewSQLRouteLog(db *sql.DB) *SQLRouteLog {
	return &SQLRouteLog{DB: db}
}

// Append a single query record.
func (s *SQLRouteLog) Record(ctx context.Context, q domain.RouteQuery) (err error) {
	defer obs.Time(ctx, "history.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("route log: db is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_queries (source, target, found, distance, vertices, queried_at_ms)
	VALUES ($1, $2, $3, $4, $5, $6);
	`, q.Source, q.Target, q.Found, q.Distance, q.Vertices, q.QueriedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("record route query %d -> %d: %w", q.Source, q.Target, err)
	}

	return nil
}

// Fetch the most recent records, newest first.
func (s *SQLRouteLog) Recent(ctx context.Context, limit int) (_ []domain.RouteQuery, err error) {
	defer obs.Time(ctx, "history.sql.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("route log: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT source, target, found, distance, vertices, queried_at_ms
	FROM route_queries
	ORDER BY queried_at_ms DESC
	LIMIT $1;
	`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent route queries: query route_queries table: %w", err)
	}
	defer rows.Close()

	return scanQueries(rows)
}

func scanQueries(rows *sql.Rows) ([]domain.RouteQuery, error) {
	out := make([]domain.RouteQuery, 0, 16)
	for rows.Next() {
		var q domain.RouteQuery
		var ms int64
		if err := rows.Scan(&q.Source, &q.Target, &q.Found, &q.Distance, &q.Vertices, &ms); err != nil {
			return nil, fmt.Errorf("recent route queries: scan row: %w", err)
		}
		q.QueriedAt = time.UnixMilli(ms).UTC()
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent route queries: row iteration: %w", err)
	}

	return out, nil
}
