package services

import (
	"context"
	"errors"
	"fmt"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"grid-route-client/internal/ports"
	"time"

	"golang.org/x/sync/errgroup"
)

// ResolveRoute snaps both endpoints and fetches the shortest path between
// the resulting nodes.
//
// The two snaps run concurrently; if either fails the other is cancelled and
// the first error is returned with a nil Journey. Errors are wrapped, so
// errors.Is and errors.As still see the provider's error.
//
// When the snaps succeed but the shortest-path request fails, the returned
// Journey carries the snapped Source and Target with an empty Path alongside
// the error, so callers can still audit the query.
func ResolveRoute(
	ctx context.Context,
	provider ports.RouteProvider,
	from domain.Coordinate,
	to domain.Coordinate,
) (_ *domain.Journey, err error) {
	defer obs.Time(ctx, "services.ResolveRoute")(&err)

	var source, target domain.GridNode

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := provider.Snap(gctx, from)
		if err != nil {
			return fmt.Errorf("snap origin: %w", err)
		}
		source = n
		return nil
	})
	g.Go(func() error {
		n, err := provider.Snap(gctx, to)
		if err != nil {
			return fmt.Errorf("snap destination: %w", err)
		}
		target = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve route: %w", err)
	}

	path, err := provider.ShortestPath(ctx, source.ID, target.ID)
	if err != nil {
		return &domain.Journey{Source: source, Target: target}, fmt.Errorf("resolve route: %w", err)
	}

	return &domain.Journey{Source: source, Target: target, Path: path}, nil
}

// RecordQuery builds the audit record for a shortest-path outcome.
// Only a found path or ErrPathNotFound produce a record; transport failures
// say nothing about the route and return ok=false.
func RecordQuery(source, target int64, path domain.Path, err error, now time.Time) (domain.RouteQuery, bool) {
	q := domain.RouteQuery{Source: source, Target: target, QueriedAt: now}

	switch {
	case err == nil:
		q.Found = true
		q.Distance = path.Distance
		q.Vertices = len(path.Coordinates)
	case errors.Is(err, domain.ErrPathNotFound):
		q.Found = false
	default:
		return domain.RouteQuery{}, false
	}

	return q, true
}
