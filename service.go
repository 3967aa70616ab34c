package unresolver

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hailystevens/unresolver/config"
	"github.com/hailystevens/unresolver/reports"
)

// Service backs the companion UI server: it serves the static interface,
// exposes prometheus metrics and answers scan requests with JSON reports.
type Service struct {
	conf *config.Config
}

func NewService(conf *config.Config) (*Service, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Service{conf: conf}, nil
}

var serviceMetrics = setupMetrics()

// Handler builds the HTTP surface. uiDir is the directory holding the
// static interface files.
func (s *Service) Handler(uiDir string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", corsHandler(http.FileServer(http.Dir(uiDir))))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/scan", s.handleScan)
	return mux
}

// corsHandler mirrors the headers the original interface relied on while
// being developed against a separate frontend origin.
func corsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

func (s *Service) handleScan(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path parameter", http.StatusBadRequest)
		return
	}
	conf := *s.conf
	if r.URL.Query().Get("external") == "false" {
		conf.CheckExternal = false
	}

	checker := newChecker(&conf, serviceMetrics)
	run, errRun := checker.Scan(r.Context(), path)
	if errRun != nil {
		if errors.Is(errRun, ErrNoDocuments) {
			http.Error(w, "no HTML files found in: "+path, http.StatusNotFound)
			return
		}
		if errors.Is(errRun, context.Canceled) {
			return
		}
		http.Error(w, errRun.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if errWrite := reports.WriteJSON(w, run); errWrite != nil {
		http.Error(w, errWrite.Error(), http.StatusInternalServerError)
	}
}
