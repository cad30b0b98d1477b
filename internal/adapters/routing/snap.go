package routing

import (
	"context"
	"fmt"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"net/url"
	"strconv"
)

// Fields are pointers so a missing key can be told apart from a zero value.
type snapResponse struct {
	ID  *int64   `json:"id"`
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Snap resolves c to the nearest routable node (GET /snap).
// The coordinate is forwarded unmodified and the node is returned exactly as
// the backend reports it.
func (c *RouteClient) Snap(
	ctx context.Context,
	coord domain.Coordinate,
) (_ domain.GridNode, err error) {
	defer obs.Time(ctx, "routing.Snap")(&err)

	q := url.Values{}
	q.Set("lat", formatFloat(coord.Lat))
	q.Set("lng", formatFloat(coord.Lng))

	var decoded snapResponse
	if err := c.getJSON(ctx, c.endpoint("snap", q), &decoded); err != nil {
		return domain.GridNode{}, fmt.Errorf("snap (%s, %s): %w", q.Get("lat"), q.Get("lng"), err)
	}

	node, err := decoded.toGridNode()
	if err != nil {
		return domain.GridNode{}, fmt.Errorf("snap (%s, %s): %w", q.Get("lat"), q.Get("lng"), err)
	}

	return node, nil
}

func (r snapResponse) toGridNode() (domain.GridNode, error) {
	switch {
	case r.ID == nil:
		return domain.GridNode{}, fmt.Errorf("%w: snap response missing id", ErrMalformedResponse)
	case r.Lat == nil:
		return domain.GridNode{}, fmt.Errorf("%w: snap response missing lat", ErrMalformedResponse)
	case r.Lng == nil:
		return domain.GridNode{}, fmt.Errorf("%w: snap response missing lng", ErrMalformedResponse)
	}

	return domain.GridNode{
		ID:         *r.ID,
		Coordinate: domain.Coordinate{Lat: *r.Lat, Lng: *r.Lng},
	}, nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
