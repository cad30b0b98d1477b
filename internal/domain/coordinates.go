package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

// Mean earth radius used for great-circle lengths.
const EarthRadiusMeters = 6371008.8

// Geographic coordinate in degrees. No range is enforced; the routing
// backend owns validity.
type Coordinate struct {
	Lat float64
	Lng float64
}

// A snapped vertex of the backend's routable network.
type GridNode struct {
	ID int64
	Coordinate
}

func (c Coordinate) latLng() s2.LatLng { return s2.LatLngFromDegrees(c.Lat, c.Lng) }

// DistanceTo returns the great-circle distance to other in meters.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return c.latLng().Distance(other.latLng()).Radians() * EarthRadiusMeters
}

// ParseCoordinate parses "lat,lng" in degrees.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%q: want lat,lng", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%q: invalid latitude", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%q: invalid longitude", s)
	}

	return Coordinate{Lat: lat, Lng: lng}, nil
}
