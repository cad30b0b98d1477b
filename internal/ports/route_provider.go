package ports

import (
	"context"
	"grid-route-client/internal/domain"
)

// Contract for a remote routing backend.
type RouteProvider interface {
	// Resolve a coordinate to the nearest routable network node.
	Snap(ctx context.Context, c domain.Coordinate) (domain.GridNode, error)
	// Return the shortest path between two snapped nodes.
	// Fails with domain.ErrPathNotFound when the backend has no route.
	ShortestPath(ctx context.Context, source, target int64) (domain.Path, error)
}
