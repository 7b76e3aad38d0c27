// Package httpapi maps HTTP requests onto the dispatcher and renders
// its outcomes as status codes and JSON payloads.
package httpapi

import (
	"net/http"

	"github.com/obiente/scribed/internal/config"
	"github.com/obiente/scribed/internal/dispatch"
)

// NewRouter wires the service endpoints onto a mux.
func NewRouter(cfg config.Config, d *dispatch.Dispatcher) http.Handler {
	h := &handler{cfg: cfg, dispatcher: d}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc("/transcribe", h.transcribe)
	return mux
}
