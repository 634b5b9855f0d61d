package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/worldcup-versus-service/internal/http/handlers"
	"github.com/preston-bernstein/worldcup-versus-service/internal/http/middleware"
	"github.com/preston-bernstein/worldcup-versus-service/internal/metrics"
)

// NewRouter registers HTTP routes on a gorilla/mux router wrapped with
// request logging and metrics.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Middleware(logger, recorder))

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams", h.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/search", h.SearchTeams).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{code}/candidates", h.Candidates).Methods(nethttp.MethodGet)
	r.HandleFunc("/versus", h.Versus).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/count", h.MatchCount).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}", h.Match).Methods(nethttp.MethodGet)

	r.NotFoundHandler = handlers.NotFound(logger)
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed(logger)
	return r
}
