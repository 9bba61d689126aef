package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pagewindow/pkg/cache"
	"github.com/Sternrassler/pagewindow/pkg/config"
	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

// fakeRanges records lookups and returns a fixed range or error.
type fakeRanges struct {
	keys []cache.RangeKey
	rng  []pagination.Entry
	err  error
}

func (f *fakeRanges) GetOrCompute(_ context.Context, key cache.RangeKey) ([]pagination.Entry, error) {
	f.keys = append(f.keys, key)
	return f.rng, f.err
}

func newTestServer() *server {
	return newServer(config.Default(), zerolog.Nop())
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealthEndpoint(t *testing.T) {
	resp, body := get(t, newTestServer().routes(), "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("ready without backend", func(t *testing.T) {
		resp, body := get(t, newTestServer().routes(), "/ready")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", body)
	})

	t.Run("not ready when backend fails", func(t *testing.T) {
		srv := newTestServer()
		srv.ready = func(context.Context) error { return errors.New("connection refused") }

		resp, _ := get(t, srv.routes(), "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestRangeEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantState pagination.State
		wantRange string
	}{
		{
			name:      "first page with defaults",
			query:     "/range?total=10&page=1",
			wantRange: `[1,2,3,4,5,"dots",10]`,
			wantState: pagination.State{Active: 1, Total: 10, Siblings: 1, Boundaries: 1, HasNext: true},
		},
		{
			name:      "page omitted defaults to first",
			query:     "/range?total=3",
			wantRange: `[1,2,3]`,
			wantState: pagination.State{Active: 1, Total: 3, Siblings: 1, Boundaries: 1, HasNext: true},
		},
		{
			name:      "page above total is clamped",
			query:     "/range?total=10&page=99",
			wantRange: `[1,"dots",6,7,8,9,10]`,
			wantState: pagination.State{Active: 10, Total: 10, Siblings: 1, Boundaries: 1, HasPrev: true},
		},
		{
			name:      "explicit zero siblings and boundaries",
			query:     "/range?total=10&page=5&siblings=0&boundaries=0",
			wantRange: `["dots",5,"dots"]`,
			wantState: pagination.State{Active: 5, Total: 10, HasPrev: true, HasNext: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, newTestServer().routes(), tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode, body)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(body), &raw))
			assert.JSONEq(t, tt.wantRange, string(raw["range"]))

			var state pagination.State
			require.NoError(t, json.Unmarshal([]byte(body), &state))
			state.Range = nil
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestRangeEndpoint_UsesCache(t *testing.T) {
	srv := newTestServer()
	ranges := &fakeRanges{rng: []pagination.Entry{1, pagination.Ellipsis, 9}}
	srv.ranges = ranges

	resp, body := get(t, srv.routes(), "/range?total=9&page=42&siblings=0")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, ranges.keys, 1)
	assert.Equal(t, cache.RangeKey{Total: 9, Active: 9, Siblings: 0, Boundaries: 1}, ranges.keys[0])
	assert.Contains(t, body, `"range":[1,"dots",9]`)
}

func TestRangeEndpoint_CacheErrorFallsBack(t *testing.T) {
	srv := newTestServer()
	srv.ranges = &fakeRanges{err: errors.New("redis down")}

	resp, body := get(t, srv.routes(), "/range?total=10&page=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"range":[1,2,3,4,5,"dots",10]`)
}

func TestRangeEndpoint_BadQuery(t *testing.T) {
	for _, query := range []string{
		"/range",
		"/range?total=ten",
		"/range?total=10&page=first",
		"/range?total=10&siblings=1.5",
		"/range?total=10&boundaries=x",
		"/range?total=100001",
		"/range?total=2000000000&siblings=1000000000",
		"/range?total=10&siblings=-1",
		"/range?total=10&boundaries=-1",
	} {
		t.Run(query, func(t *testing.T) {
			resp, body := get(t, newTestServer().routes(), query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body, "invalid query")
		})
	}
}

func TestRangeEndpoint_MaxTotal(t *testing.T) {
	cfg := config.Default()
	cfg.MaxTotal = 50
	h := newServer(cfg, zerolog.Nop()).routes()

	resp, _ := get(t, h, "/range?total=50")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, h, "/range?total=51")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "invalid query: total must be")
}

func TestRangeEndpoint_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer().routes().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/range?total=10", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestNavigateEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		active int
	}{
		{"set", "/navigate?op=set&to=3&total=10&page=1", 3},
		{"set below range", "/navigate?op=set&to=-1&total=10&page=5", 1},
		{"set above range", "/navigate?op=set&to=15&total=10&page=5", 10},
		{"next", "/navigate?op=next&total=10&page=2", 3},
		{"prev", "/navigate?op=prev&total=10&page=3", 2},
		{"first", "/navigate?op=first&total=10&page=5", 1},
		{"last", "/navigate?op=last&total=10&page=5", 10},
		{"next on last page", "/navigate?op=next&total=10&page=10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, newTestServer().routes(), tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode, body)

			var got navigateResponse
			require.NoError(t, json.Unmarshal([]byte(body), &got))
			assert.Equal(t, tt.active, got.Active)
			assert.Equal(t, tt.active, got.Notified, "observer notified with the clamped page")
			assert.Equal(t, pagination.Range(1, 1, 10, tt.active), got.Range)
		})
	}
}

func TestNavigateEndpoint_BadQuery(t *testing.T) {
	for _, query := range []string{
		"/navigate?total=10",
		"/navigate?op=jump&total=10",
		"/navigate?op=set&total=10",
		"/navigate?op=set&to=abc&total=10",
		"/navigate?op=next",
		"/navigate?op=next&total=9223372036854775807&page=9223372036854775807",
	} {
		t.Run(query, func(t *testing.T) {
			resp, body := get(t, newTestServer().routes(), query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.True(t, strings.Contains(body, "invalid query"), body)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer().routes()
	get(t, h, "/range?total=10")

	resp, body := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	assert.Contains(t, body, `pagewindow_http_requests_total{code="200",handler="range"}`)
}
