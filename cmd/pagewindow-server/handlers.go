package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Sternrassler/pagewindow/pkg/cache"
	"github.com/Sternrassler/pagewindow/pkg/config"
	"github.com/Sternrassler/pagewindow/pkg/metrics"
	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

var httpRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pagewindow_http_requests_total",
		Help: "Total number of HTTP requests by handler and status code",
	},
	[]string{"handler", "code"},
)

// ErrInvalidQuery is returned for missing or malformed query parameters.
var ErrInvalidQuery = errors.New("invalid query")

// rangeSource returns the range for a key. *cache.Manager implements it.
type rangeSource interface {
	GetOrCompute(ctx context.Context, key cache.RangeKey) ([]pagination.Entry, error)
}

type server struct {
	siblings   int
	boundaries int
	maxTotal   int

	// ranges serves cached ranges; nil computes directly.
	ranges rangeSource

	// ready reports backend readiness; nil is always ready.
	ready func(context.Context) error

	logger zerolog.Logger
}

func newServer(cfg config.Config, logger zerolog.Logger) *server {
	return &server{
		siblings:   cfg.Siblings,
		boundaries: cfg.Boundaries,
		maxTotal:   cfg.MaxTotal,
		logger:     logger,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/health", instrument("health", http.HandlerFunc(healthHandler)))
	mux.Handle("/ready", instrument("ready", http.HandlerFunc(s.readyHandler)))
	mux.Handle("/range", instrument("range", getOnly(s.rangeHandler)))
	mux.Handle("/navigate", instrument("navigate", getOnly(s.navigateHandler)))
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func instrument(name string, h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(
		httpRequests.MustCurryWith(prometheus.Labels{"handler": name}), h)
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (s *server) readyHandler(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			s.logger.Warn().Err(err).Msg("Readiness check failed")
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// rangeHandler serves GET /range?total=&page=&siblings=&boundaries=
func (s *server) rangeHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.parseConfig(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	state := pagination.New(cfg).Snapshot()

	if s.ranges != nil {
		key := cache.RangeKey{
			Total:      state.Total,
			Active:     state.Active,
			Siblings:   state.Siblings,
			Boundaries: state.Boundaries,
		}
		rng, err := s.ranges.GetOrCompute(r.Context(), key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key.String()).Msg("Range cache error, using computed range")
		}
		if rng != nil {
			state.Range = rng
		}
	}

	s.writeJSON(w, state)
}

// navigateResponse is the state after a navigation call plus the page the
// observer was notified with.
type navigateResponse struct {
	Op       pagination.Op `json:"op"`
	Notified int           `json:"notified"`
	pagination.State
}

// navigateHandler serves GET /navigate?op=&to=&total=&page=&siblings=&boundaries=
func (s *server) navigateHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cfg, err := s.parseConfig(query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	op, err := pagination.ParseOp(query.Get("op"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", ErrInvalidQuery, err))
		return
	}

	target := 0
	if op == pagination.OpSet {
		if target, err = intParam(query, "to", 0, true); err != nil {
			s.writeError(w, err)
			return
		}
	}

	resp := navigateResponse{Op: op}
	cfg.OnChange = pagination.ObserverFunc(func(page int) {
		resp.Notified = page
	})

	ctrl := pagination.New(cfg)
	if err := ctrl.Apply(op, target); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", ErrInvalidQuery, err))
		return
	}
	resp.State = ctrl.Snapshot()

	s.writeJSON(w, resp)
}

func (s *server) parseConfig(query url.Values) (pagination.Config, error) {
	total, err := intParam(query, "total", 0, true)
	if err != nil {
		return pagination.Config{}, err
	}
	page, err := intParam(query, "page", 1, false)
	if err != nil {
		return pagination.Config{}, err
	}
	siblings, err := intParam(query, "siblings", s.siblings, false)
	if err != nil {
		return pagination.Config{}, err
	}
	boundaries, err := intParam(query, "boundaries", s.boundaries, false)
	if err != nil {
		return pagination.Config{}, err
	}

	switch {
	case total > s.maxTotal:
		return pagination.Config{}, fmt.Errorf("%w: total must be <= %d, got %d", ErrInvalidQuery, s.maxTotal, total)
	case siblings < 0:
		return pagination.Config{}, fmt.Errorf("%w: siblings must be >= 0, got %d", ErrInvalidQuery, siblings)
	case boundaries < 0:
		return pagination.Config{}, fmt.Errorf("%w: boundaries must be >= 0, got %d", ErrInvalidQuery, boundaries)
	}

	logger := s.logger
	return pagination.Config{
		Page:       page,
		Total:      total,
		Siblings:   siblings,
		Boundaries: boundaries,
		Logger:     &logger,
	}, nil
}

func intParam(query url.Values, name string, fallback int, required bool) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		if required {
			return 0, fmt.Errorf("%w: %s is required", ErrInvalidQuery, name)
		}
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidQuery, name, raw)
	}
	return n, nil
}

func (s *server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write response")
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	s.logger.Warn().Err(err).Msg("Rejected request")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
