// Package api implements the HTTP surface of the price service.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nearbyprices/price-service/pkg/logging"
	"github.com/nearbyprices/price-service/pkg/prices"
)

// Deps holds all dependencies for the HTTP server.
type Deps struct {
	Manager  *prices.Manager
	Recorder *prices.Recorder

	// Ready is called by /healthz; nil means always healthy (for tests).
	Ready func(r *http.Request) error
}

// New creates an http.Handler with all routes and middleware wired.
func New(deps Deps) http.Handler {
	s := &server{
		deps:   deps,
		logger: logging.NewLogger("api"),
	}

	r := chi.NewRouter()

	r.Use(s.recovery)
	r.Use(s.requestID)
	r.Use(s.logging)
	r.Use(s.metrics)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/history", s.handleHistory)
		r.Get("/{id}/prices", s.handleItemPrices)
		r.Put("/{itemId}/prices/{storeId}", s.handleUpdatePrice)
	})

	return r
}

type server struct {
	deps   Deps
	logger zerolog.Logger
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard {"error": ...} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
