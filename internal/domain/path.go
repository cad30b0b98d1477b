package domain

import (
	"errors"

	"github.com/golang/geo/s2"
)

// ErrPathNotFound signals that the backend answered but has no route
// between the requested nodes.
var ErrPathNotFound = errors.New("could not find shortest path")

// Represents the shortest path between two grid nodes.
// Coordinates are in travel order: the first element is the source and the
// last is the target. Distance is the backend's cost metric, passed through
// as-is. A Path returned by a provider always has at least one coordinate
// and is not mutated after construction.
type Path struct {
	Coordinates []Coordinate
	Distance    float64
}

// Rectangle spanning a path, suitable for framing it on a map.
type Bounds struct {
	SouthWest Coordinate
	NorthEast Coordinate
}

// Sum of great-circle segment lengths in meters.
// This is informational and independent of Distance.
func (p Path) GeodesicLength() float64 {
	total := 0.0
	for i := 1; i < len(p.Coordinates); i++ {
		total += p.Coordinates[i-1].DistanceTo(p.Coordinates[i])
	}
	return total
}

// Bounds returns the smallest lat/lng rectangle containing every vertex.
// The zero Bounds is returned for an empty path.
func (p Path) Bounds() Bounds {
	if len(p.Coordinates) == 0 {
		return Bounds{}
	}

	// Rect.AddPoint picks the shorter longitude span, so routes crossing the
	// antimeridian get a rectangle with West > East.
	rect := s2.RectFromLatLng(p.Coordinates[0].latLng())
	for _, c := range p.Coordinates[1:] {
		rect = rect.AddPoint(c.latLng())
	}

	lo, hi := rect.Lo(), rect.Hi()
	return Bounds{
		SouthWest: Coordinate{Lat: lo.Lat.Degrees(), Lng: lo.Lng.Degrees()},
		NorthEast: Coordinate{Lat: hi.Lat.Degrees(), Lng: hi.Lng.Degrees()},
	}
}
