package domain

import "time"

// Audit record of a single shortest-path query.
// Distance and Vertices are zero when Found is false.
type RouteQuery struct {
	Source    int64
	Target    int64
	Found     bool
	Distance  float64
	Vertices  int
	QueriedAt time.Time
}

// Snapped endpoints plus the path between them.
type Journey struct {
	Source GridNode
	Target GridNode
	Path   Path
}
