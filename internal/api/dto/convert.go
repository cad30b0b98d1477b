package dto

import "grid-route-client/internal/domain"

func NewGridNodeResponse(n domain.GridNode) GridNodeResponse {
	return GridNodeResponse{ID: n.ID, Lat: n.Lat, Lng: n.Lng}
}

func NewPathResponse(p domain.Path) PathResponse {
	coords := make([]CoordinateResponse, 0, len(p.Coordinates))
	for _, c := range p.Coordinates {
		coords = append(coords, CoordinateResponse{Lat: c.Lat, Lng: c.Lng})
	}

	b := p.Bounds()
	return PathResponse{
		Coordinates:    coords,
		Distance:       p.Distance,
		GeodesicMeters: p.GeodesicLength(),
		Bounds: BoundsResponse{
			SouthWest: CoordinateResponse{Lat: b.SouthWest.Lat, Lng: b.SouthWest.Lng},
			NorthEast: CoordinateResponse{Lat: b.NorthEast.Lat, Lng: b.NorthEast.Lng},
		},
	}
}

func NewJourneyResponse(j *domain.Journey) JourneyResponse {
	return JourneyResponse{
		Source: NewGridNodeResponse(j.Source),
		Target: NewGridNodeResponse(j.Target),
		Path:   NewPathResponse(j.Path),
	}
}
