package ports

import (
	"context"
	"grid-route-client/internal/domain"
)

// Port: an append-only audit log of shortest-path queries.
type RouteLog interface {
	Record(ctx context.Context, q domain.RouteQuery) error
	// Return up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.RouteQuery, error)
}
