package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	appteams "github.com/preston-bernstein/worldcup-versus-service/internal/app/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/app/versus"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/poller"
	"github.com/preston-bernstein/worldcup-versus-service/internal/session"
)

// Handler wires HTTP routes to the comparison and roster services.
type Handler struct {
	versus   *versus.Service
	teams    *appteams.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// CountResponse is the payload of the record database size endpoint.
type CountResponse struct {
	Count  int    `json:"count"`
	Loaded bool   `json:"loaded"`
	Label  string `json:"label"`
}

// NewHandler constructs a Handler with defaults.
func NewHandler(vs *versus.Service, ts *appteams.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		versus:   vs,
		teams:    ts,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic, e.g. for Kubernetes readiness checks.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Teams returns the roster derived from the loaded matches.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.teams.Teams(), h.logger)
}

// SearchTeams filters the upstream teams listing by ?q=.
func (h *Handler) SearchTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query().Get("q")
	found, err := h.teams.Search(r.Context(), query)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "team search failed", "err", err)
		writeError(w, r, nethttp.StatusBadGateway, "teams unavailable", h.logger)
		return
	}
	if found == nil {
		found = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, found, h.logger)
}

// Candidates returns the roster minus the team in the path.
func (h *Handler) Candidates(w nethttp.ResponseWriter, r *nethttp.Request) {
	code := mux.Vars(r)["code"]
	if _, ok := h.teams.TeamByCode(code); !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.teams.Candidates(code), h.logger)
}

// Versus builds the head-to-head comparison for ?teamA=&teamB=.
func (h *Handler) Versus(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	codeA, codeB := q.Get("teamA"), q.Get("teamB")

	comparison, err := h.versus.Compare(codeA, codeB)
	switch {
	case errors.Is(err, session.ErrSameTeam):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	case errors.Is(err, session.ErrUnknownTeam):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	case err != nil:
		writeError(w, r, nethttp.StatusInternalServerError, "comparison failed", h.logger)
		return
	}

	status := nethttp.StatusOK
	if comparison.State == versus.StateUnavailable {
		status = nethttp.StatusServiceUnavailable
	}
	logging.Info(loggerFromContext(r, h.logger), "served comparison",
		logging.FieldTeamA, codeA,
		logging.FieldTeamB, codeB,
		"state", string(comparison.State),
		logging.FieldCount, comparison.Summary.Total,
	)
	writeJSON(w, status, comparison, h.logger)
}

// MatchCount reports the size of the record database.
func (h *Handler) MatchCount(w nethttp.ResponseWriter, r *nethttp.Request) {
	n := h.versus.DatabaseSize()
	writeJSON(w, nethttp.StatusOK, CountResponse{
		Count:  n,
		Loaded: h.versus.Loaded(),
		Label:  fmt.Sprintf("Database contains %d matches", n),
	}, h.logger)
}

// Match returns a single record by its upstream id.
func (h *Handler) Match(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.versus.Loaded() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "match data unavailable", h.logger)
		return
	}
	id := mux.Vars(r)["id"]
	m, ok := h.versus.Match(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, m, h.logger)
}
