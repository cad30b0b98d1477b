package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"grid-route-client/internal/adapters/routing"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/platform/obs"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger().Error("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// statusClientClosedRequest is recorded when the caller hung up before the
// backend answered. Nobody reads the response.
const statusClientClosedRequest = 499

// writeProviderError maps routing failures to gateway statuses. A missing
// route is a 404 so the UI can show a "no route" state instead of a
// generic backend failure.
func writeProviderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var se *routing.StatusError

	switch {
	case errors.Is(err, domain.ErrPathNotFound):
		writeError(w, r, http.StatusNotFound, domain.ErrPathNotFound.Error())
		return
	case errors.Is(err, context.Canceled):
		w.WriteHeader(statusClientClosedRequest)
		obs.Logger().Debug(op+" abandoned by client", "req_id", obs.RequestID(r.Context()), "err", err)
		return
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusGatewayTimeout, "routing backend timed out")
	case errors.Is(err, routing.ErrMalformedResponse):
		writeError(w, r, http.StatusBadGateway, "routing backend returned an invalid response")
	case errors.As(err, &se):
		writeError(w, r, http.StatusBadGateway, fmt.Sprintf("routing backend returned status %d", se.Code))
	default:
		writeError(w, r, http.StatusBadGateway, "routing backend unavailable")
	}

	obs.Logger().Error(op+" failed", "req_id", obs.RequestID(r.Context()), "err", err)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func parseIntParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
