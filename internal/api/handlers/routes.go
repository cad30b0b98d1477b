package handlers

import (
	"context"
	"grid-route-client/internal/api/dto"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"grid-route-client/internal/ports"
	"grid-route-client/internal/services"
	"net/http"
	"strconv"
	"time"
)

// RouteHandler exposes the routing backend to the map frontend.
// Log is optional; when nil, shortest-path queries are not recorded and
// History answers 404.
type RouteHandler struct {
	Provider ports.RouteProvider
	Log      ports.RouteLog
	Now      func() time.Time
}

// Snap handles GET /snap?lat=&lng=.
func (h *RouteHandler) Snap(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lng, err := parseFloatParam(r, "lng")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.Provider.Snap(r.Context(), domain.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		writeProviderError(w, r, "snap", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewGridNodeResponse(node))
}

// Route handles GET /route?source=&target=.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	source, err := parseIntParam(r, "source")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	target, err := parseIntParam(r, "target")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	path, err := h.Provider.ShortestPath(r.Context(), source, target)
	h.record(r.Context(), source, target, path, err)
	if err != nil {
		writeProviderError(w, r, "shortest path", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPathResponse(path))
}

// Journey handles GET /journey?from=lat,lng&to=lat,lng.
func (h *RouteHandler) Journey(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	from, err := domain.ParseCoordinate(q.Get("from"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := domain.ParseCoordinate(q.Get("to"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "to: "+err.Error())
		return
	}

	j, err := services.ResolveRoute(r.Context(), h.Provider, from, to)
	if j != nil {
		h.record(r.Context(), j.Source.ID, j.Target.ID, j.Path, err)
	}
	if err != nil {
		writeProviderError(w, r, "journey", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewJourneyResponse(j))
}

// History handles GET /history?limit=.
func (h *RouteHandler) History(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if h.Log == nil {
		writeError(w, r, http.StatusNotFound, "route history is not enabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	queries, err := h.Log.Recent(r.Context(), limit)
	if err != nil {
		obs.Logger().Error("list route history failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRouteQueriesResponse{Queries: make([]dto.RouteQueryResponse, 0, len(queries))}
	for _, q := range queries {
		res.Queries = append(res.Queries, dto.RouteQueryResponse{
			Source:    q.Source,
			Target:    q.Target,
			Found:     q.Found,
			Distance:  q.Distance,
			Vertices:  q.Vertices,
			QueriedAt: q.QueriedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// record writes the audit entry; failures are logged and never reach the client.
func (h *RouteHandler) record(ctx context.Context, source, target int64, path domain.Path, err error) {
	if h.Log == nil {
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	q, ok := services.RecordQuery(source, target, path, err, now().UTC())
	if !ok {
		return
	}
	if err := h.Log.Record(ctx, q); err != nil {
		obs.Logger().Warn("route history write failed", "req_id", obs.RequestID(ctx), "err", err)
	}
}
