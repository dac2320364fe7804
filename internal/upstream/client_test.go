package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/signaidy/nexus-standalone/internal/config"
)

func newTestClient(baseURL string) *Client {
	cfg := config.UpstreamConfig{BaseURL: baseURL, TimeoutSeconds: 2}
	return NewClient(cfg, nil, zap.NewNop())
}

func TestClientDecodesOffers(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"flight_number":"AV123","departure_location":"BOG","arrival_location":"MDE","price":120.5}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	offers := client.OneWayFlights(context.Background(), "BOG", "MDE", "2026-09-01")

	if gotPath != "/one-way-flights" {
		t.Fatalf("got path %q, want /one-way-flights", gotPath)
	}
	if gotQuery == "" {
		t.Fatal("expected search parameters in the query string")
	}
	if len(offers) != 1 || offers[0].FlightNumber != "AV123" {
		t.Fatalf("got offers %+v, want one offer AV123", offers)
	}
}

func TestClientDegradesToEmptyResults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream error status", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"body is not json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			if offers := client.Flights(context.Background()); len(offers) != 0 {
				t.Fatalf("got %d offers, want none", len(offers))
			}
		})
	}

	t.Run("upstream unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL)
		if cities := client.Cities(context.Background()); len(cities) != 0 {
			t.Fatalf("got %d cities, want none", len(cities))
		}
	})

	t.Run("no base url configured", func(t *testing.T) {
		client := newTestClient("")
		if hotels := client.Hotels(context.Background(), "CTG", "2026-09-01", "2026-09-05"); len(hotels) != 0 {
			t.Fatalf("got %d hotels, want none", len(hotels))
		}
	})
}

func TestNilCacheIsPassThrough(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	var out []City
	if cache.Get(ctx, "http://example.test/cities", &out) {
		t.Fatal("nil cache must report a miss")
	}
	cache.Set(ctx, "http://example.test/cities", []City{{Name: "Bogota"}})

	empty := NewCache(nil, 0)
	if empty.Get(ctx, "http://example.test/cities", &out) {
		t.Fatal("cache without a client must report a miss")
	}
}
