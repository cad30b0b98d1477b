package dto

import "time"

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GridNodeResponse struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BoundsResponse struct {
	SouthWest CoordinateResponse `json:"south_west"`
	NorthEast CoordinateResponse `json:"north_east"`
}

type PathResponse struct {
	Coordinates    []CoordinateResponse `json:"coordinates"`
	Distance       float64              `json:"distance"`
	GeodesicMeters float64              `json:"geodesic_meters"`
	Bounds         BoundsResponse       `json:"bounds"`
}

type JourneyResponse struct {
	Source GridNodeResponse `json:"source"`
	Target GridNodeResponse `json:"target"`
	Path   PathResponse     `json:"path"`
}

type RouteQueryResponse struct {
	Source    int64     `json:"source"`
	Target    int64     `json:"target"`
	Found     bool      `json:"found"`
	Distance  float64   `json:"distance"`
	Vertices  int       `json:"vertices"`
	QueriedAt time.Time `json:"queried_at"`
}

type ListRouteQueriesResponse struct {
	Queries []RouteQueryResponse `json:"queries"`
}
