package routing

import (
	"context"
	"fmt"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"math"
	"net/url"
	"strconv"
)

// A nil slice means the key was absent or null; an empty one means the
// backend found no route.
type routeResponse struct {
	Lats     []float64 `json:"lats"`
	Lngs     []float64 `json:"lngs"`
	Distance *float64  `json:"distance"`
}

// ShortestPath requests the shortest path between two snapped nodes (GET /route).
//
// Returns:
//   - a Path with at least one coordinate on success
//   - domain.ErrPathNotFound if the backend reports an empty route
//   - an error wrapping ErrMalformedResponse for bodies of the wrong shape
//   - *StatusError or the transport error otherwise
func (c *RouteClient) ShortestPath(
	ctx context.Context,
	source int64,
	target int64,
) (_ domain.Path, err error) {
	defer obs.Time(ctx, "routing.ShortestPath")(&err)

	q := url.Values{}
	q.Set("source", strconv.FormatInt(source, 10))
	q.Set("target", strconv.FormatInt(target, 10))

	var decoded routeResponse
	if err := c.getJSON(ctx, c.endpoint("route", q), &decoded); err != nil {
		return domain.Path{}, fmt.Errorf("shortest path %d -> %d: %w", source, target, err)
	}

	path, err := decoded.toPath()
	if err != nil {
		return domain.Path{}, fmt.Errorf("shortest path %d -> %d: %w", source, target, err)
	}

	return path, nil
}

// toPath validates the parallel arrays and zips them into travel order.
// An empty lats or lngs array is not found whatever the rest of the body
// holds; every shape rule comes after it.
func (r routeResponse) toPath() (domain.Path, error) {
	if (r.Lats != nil && len(r.Lats) == 0) || (r.Lngs != nil && len(r.Lngs) == 0) {
		return domain.Path{}, domain.ErrPathNotFound
	}

	if r.Lats == nil || r.Lngs == nil || r.Distance == nil {
		return domain.Path{}, fmt.Errorf(
			"%w: route response requires lats, lngs and distance",
			ErrMalformedResponse,
		)
	}

	if len(r.Lats) != len(r.Lngs) {
		return domain.Path{}, fmt.Errorf(
			"%w: lats and lngs differ in length: lats=%d lngs=%d",
			ErrMalformedResponse, len(r.Lats), len(r.Lngs),
		)
	}

	distance := *r.Distance
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return domain.Path{}, fmt.Errorf("%w: invalid distance %v", ErrMalformedResponse, distance)
	}

	coords := make([]domain.Coordinate, len(r.Lats))
	for i, lat := range r.Lats {
		coords[i] = domain.Coordinate{Lat: lat, Lng: r.Lngs[i]}
	}

	return domain.Path{Coordinates: coords, Distance: distance}, nil
}
