package routing

import (
	"context"
	"errors"
	"grid-route-client/internal/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*RouteClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewRouteClient(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewRouteClient: %v", err)
	}
	return client, server
}

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestSnapPassthrough(t *testing.T) {
	var gotQuery url.Values
	var gotPath string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"id": 42, "lat": 40.701, "lng": -74.002}`))
	})

	node, err := client.Snap(context.Background(), domain.Coordinate{Lat: 40.7, Lng: -74.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.GridNode{ID: 42, Coordinate: domain.Coordinate{Lat: 40.701, Lng: -74.002}}
	if node != want {
		t.Fatalf("node = %+v, want %+v", node, want)
	}

	if gotPath != "/snap" {
		t.Errorf("path = %q, want /snap", gotPath)
	}
	if gotQuery.Get("lat") != "40.7" || gotQuery.Get("lng") != "-74" {
		t.Errorf("query = %v, want lat=40.7 lng=-74", gotQuery)
	}
}

func TestSnapMissingField(t *testing.T) {
	bodies := map[string]string{
		"missing id":  `{"lat": 1, "lng": 2}`,
		"null id":     `{"id": null, "lat": 1, "lng": 2}`,
		"missing lat": `{"id": 1, "lng": 2}`,
		"missing lng": `{"id": 1, "lat": 2}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, writeBody(body))

			_, err := client.Snap(context.Background(), domain.Coordinate{})
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("err = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestSnapZeroValuesAreValid(t *testing.T) {
	client, _ := newTestClient(t, writeBody(`{"id": 0, "lat": 0, "lng": 0}`))

	node, err := client.Snap(context.Background(), domain.Coordinate{Lat: 0.1, Lng: 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node != (domain.GridNode{}) {
		t.Fatalf("node = %+v, want zero node", node)
	}
}

func TestShortestPathZipsInOrder(t *testing.T) {
	var gotQuery url.Values
	var gotPath string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"lats": [10.0, 10.5, 11.0], "lngs": [20.0, 20.2, 20.5], "distance": 153.4}`))
	})

	path, err := client.ShortestPath(context.Background(), 7, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Coordinate{{Lat: 10.0, Lng: 20.0}, {Lat: 10.5, Lng: 20.2}, {Lat: 11.0, Lng: 20.5}}
	if len(path.Coordinates) != len(want) {
		t.Fatalf("len(coordinates) = %d, want %d", len(path.Coordinates), len(want))
	}
	for i := range want {
		if path.Coordinates[i] != want[i] {
			t.Errorf("coordinate[%d] = %+v, want %+v", i, path.Coordinates[i], want[i])
		}
	}
	if path.Distance != 153.4 {
		t.Errorf("distance = %v, want 153.4", path.Distance)
	}

	if gotPath != "/route" {
		t.Errorf("path = %q, want /route", gotPath)
	}
	if gotQuery.Get("source") != "7" || gotQuery.Get("target") != "99" {
		t.Errorf("query = %v, want source=7 target=99", gotQuery)
	}
}

func TestShortestPathSingleVertex(t *testing.T) {
	client, _ := newTestClient(t, writeBody(`{"lats": [1.5], "lngs": [2.5], "distance": 0}`))

	path, err := client.ShortestPath(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Coordinates) != 1 || path.Coordinates[0] != (domain.Coordinate{Lat: 1.5, Lng: 2.5}) {
		t.Fatalf("coordinates = %+v", path.Coordinates)
	}
	if path.Distance != 0 {
		t.Fatalf("distance = %v, want 0", path.Distance)
	}
}

func TestShortestPathNotFound(t *testing.T) {
	bodies := map[string]string{
		"both empty":             `{"lats": [], "lngs": [], "distance": 0}`,
		"lats empty":             `{"lats": [], "lngs": [1, 2], "distance": 3}`,
		"lngs empty":             `{"lats": [1, 2, 3], "lngs": [], "distance": 3}`,
		"unreachable marker":     `{"lats": [], "lngs": [], "distance": 18446744073709551615}`,
		"lats empty lngs null":   `{"lats": [], "lngs": null, "distance": 3}`,
		"lats empty only":        `{"lats": []}`,
		"lngs empty only":        `{"lngs": []}`,
		"both empty no distance": `{"lats": [], "lngs": []}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, writeBody(body))

			path, err := client.ShortestPath(context.Background(), 1, 2)
			if !errors.Is(err, domain.ErrPathNotFound) {
				t.Fatalf("err = %v, want ErrPathNotFound", err)
			}
			if errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("not-found must not be reported as malformed: %v", err)
			}
			if path.Coordinates != nil {
				t.Fatalf("expected no path, got %+v", path)
			}
		})
	}
}

func TestShortestPathMalformed(t *testing.T) {
	bodies := map[string]string{
		"length mismatch":   `{"lats": [1, 2], "lngs": [1], "distance": 3}`,
		"missing lats":      `{"lngs": [1], "distance": 3}`,
		"null lngs":         `{"lats": [1], "lngs": null, "distance": 3}`,
		"missing distance":  `{"lats": [1], "lngs": [1]}`,
		"negative distance": `{"lats": [1], "lngs": [1], "distance": -1}`,
		"wrong type":        `{"lats": "nope", "lngs": [1], "distance": 3}`,
		"not json":          `<html>oops</html>`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, writeBody(body))

			_, err := client.ShortestPath(context.Background(), 1, 2)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("err = %v, want ErrMalformedResponse", err)
			}
			if errors.Is(err, domain.ErrPathNotFound) {
				t.Fatalf("malformed body must not be reported as not found: %v", err)
			}
		})
	}
}

func TestStatusErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad source", http.StatusBadRequest)
	})

	_, err := client.ShortestPath(context.Background(), 1, 2)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", se.Code)
	}
	if se.Body != "bad source" {
		t.Errorf("body = %q, want %q", se.Body, "bad source")
	}
	if errors.Is(err, domain.ErrPathNotFound) {
		t.Errorf("status error must not be reported as not found")
	}

	_, err = client.Snap(context.Background(), domain.Coordinate{})
	if !errors.As(err, &se) {
		t.Fatalf("snap err = %v, want *StatusError", err)
	}
}

func TestNetworkErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewRouteClient(server.URL)
	if err != nil {
		t.Fatalf("NewRouteClient: %v", err)
	}
	server.Close()

	_, err = client.Snap(context.Background(), domain.Coordinate{Lat: 1, Lng: 1})

	var ue *url.Error
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *url.Error", err)
	}
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, writeBody(`{"id": 1, "lat": 1, "lng": 1}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Snap(ctx, domain.Coordinate{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBaseURLPathPrefix(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 1, "lat": 1, "lng": 1}`))
	}))
	defer server.Close()

	client, err := NewRouteClient(server.URL+"/grid", WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewRouteClient: %v", err)
	}

	if _, err := client.Snap(context.Background(), domain.Coordinate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/grid/snap" {
		t.Fatalf("path = %q, want /grid/snap", gotPath)
	}
}

func TestConcurrentRequestsAreIndependent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/snap":
			w.Write([]byte(`{"id": 5, "lat": 1, "lng": 2}`))
		case "/route":
			w.Write([]byte(`{"lats": [], "lngs": [], "distance": 0}`))
		}
	})

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := client.Snap(context.Background(), domain.Coordinate{}); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := client.ShortestPath(context.Background(), 1, 2); !errors.Is(err, domain.ErrPathNotFound) {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected result: %v", err)
	}
}

func TestUserAgentHeader(t *testing.T) {
	var got string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte(`{"id": 1, "lat": 1, "lng": 1}`))
	})
	WithUserAgent("map-ui/2")(client)

	if _, err := client.Snap(context.Background(), domain.Coordinate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "map-ui/2" {
		t.Fatalf("User-Agent = %q, want map-ui/2", got)
	}
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:9090/", want: "http://localhost:9090/"},
		{in: "http://backend:9090", want: "http://backend:9090/"},
		{in: " https://maps.example.com/api ", want: "https://maps.example.com/api/"},
		{in: "http://localhost:9090/?x=1", want: "http://localhost:9090/"},
		{in: "", wantErr: true},
		{in: "localhost:9090", wantErr: true},
		{in: "ftp://host/", wantErr: true},
		{in: "http:///nohost", wantErr: true},
	}

	for _, tt := range tests {
		u, err := ParseBaseURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBaseURL(%q) = %v, want error", tt.in, u)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBaseURL(%q) error: %v", tt.in, err)
			continue
		}
		if u.String() != tt.want {
			t.Errorf("ParseBaseURL(%q) = %q, want %q", tt.in, u.String(), tt.want)
		}
	}
}
