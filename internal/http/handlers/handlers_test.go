package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/worldcup-versus-service/internal/aggregator"
	appteams "github.com/preston-bernstein/worldcup-versus-service/internal/app/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/app/versus"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/poller"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers/fixture"
	"github.com/preston-bernstein/worldcup-versus-service/internal/session"
	"github.com/preston-bernstein/worldcup-versus-service/internal/testutil"
)

type failingFetcher struct{ err error }

func (f failingFetcher) FetchAll(ctx context.Context) (aggregator.Result, error) {
	return aggregator.Result{}, f.err
}

type failingTeams struct{}

func (failingTeams) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, errors.New("upstream down")
}

func newLoadedHandler(t *testing.T) *Handler {
	t.Helper()
	provider := fixture.NewWithMatches(testutil.BrazilArgentina())
	sess := session.New(aggregator.New(provider, 2, nil), nil, nil, nil, nil)
	if _, err := sess.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return NewHandler(versus.NewService(sess), appteams.NewService(sess, provider), nil, nil)
}

func newUnloadedHandler(t *testing.T) *Handler {
	t.Helper()
	sess := session.New(failingFetcher{err: errors.New("upstream down")}, nil, nil, nil, nil)
	if _, err := sess.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh failure")
	}
	return NewHandler(versus.NewService(sess), appteams.NewService(sess, failingTeams{}), nil, nil)
}

func TestHealth(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newLoadedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name     string
		statusFn func() poller.Status
		want     int
		wantErr  string
	}{
		{name: "no status func", want: http.StatusOK},
		{
			name:     "recent success",
			statusFn: func() poller.Status { return poller.Status{LastSuccess: time.Now()} },
			want:     http.StatusOK,
		},
		{
			name:     "never loaded",
			statusFn: func() poller.Status { return poller.Status{} },
			want:     http.StatusServiceUnavailable,
			wantErr:  "not ready",
		},
		{
			name: "failing",
			statusFn: func() poller.Status {
				return poller.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "boom"}
			},
			want:    http.StatusServiceUnavailable,
			wantErr: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, nil, tt.statusFn)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tt.want)
			if tt.wantErr == "" {
				return
			}
			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] != tt.wantErr {
				t.Fatalf("expected error %q, got %q", tt.wantErr, resp["error"])
			}
		})
	}
}

func TestTeamsReturnsRoster(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var got []teams.Team
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != 3 {
		t.Fatalf("expected 3 teams, got %+v", got)
	}
}

func TestSearchTeams(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SearchTeams), http.MethodGet, "/teams/search?q=arg", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var got []teams.Team
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != 1 || got[0].Code != "ARG" {
		t.Fatalf("expected only ARG, got %+v", got)
	}
}

func TestSearchTeamsUpstreamFailure(t *testing.T) {
	h := newUnloadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SearchTeams), http.MethodGet, "/teams/search?q=a", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestCandidates(t *testing.T) {
	h := newLoadedHandler(t)
	router := mux.NewRouter()
	router.HandleFunc("/teams/{code}/candidates", h.Candidates)

	rr := testutil.Serve(router, http.MethodGet, "/teams/bra/candidates", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got []teams.Team
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %+v", got)
	}
	for _, team := range got {
		if team.Code == "BRA" {
			t.Fatalf("expected BRA excluded")
		}
	}

	rr = testutil.Serve(router, http.MethodGet, "/teams/XXX/candidates", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestVersus(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Versus), http.MethodGet, "/versus?teamA=BRA&teamB=ARG", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var got versus.Comparison
	testutil.DecodeJSON(t, rr, &got)
	if got.State != versus.StateReady {
		t.Fatalf("expected ready, got %s", got.State)
	}
	s := got.Summary
	if s.WinsA != 1 || s.WinsB != 1 || s.Draws != 1 || s.Total != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.GoalsA != 2 || s.GoalsB != 2 {
		t.Fatalf("unexpected goals %+v", s)
	}
	if got.KPIs.DatabaseSize != 4 || got.KPIs.AverageLabel != "1.33" {
		t.Fatalf("unexpected kpis %+v", got.KPIs)
	}
	if len(got.History) != 3 || got.History[0].Year != "1990" {
		t.Fatalf("expected newest first history, got %+v", got.History)
	}
}

func TestVersusErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "same team", query: "?teamA=BRA&teamB=bra", want: http.StatusBadRequest},
		{name: "unknown team", query: "?teamA=BRA&teamB=XXX", want: http.StatusNotFound},
	}
	h := newLoadedHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Versus), http.MethodGet, "/versus"+tt.query, nil)
			testutil.AssertStatus(t, rr, tt.want)
		})
	}
}

func TestVersusIncompleteSelection(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Versus), http.MethodGet, "/versus?teamA=BRA", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got versus.Comparison
	testutil.DecodeJSON(t, rr, &got)
	if got.State != versus.StateIncomplete || got.Summary.Total != 0 {
		t.Fatalf("expected incomplete comparison, got %+v", got)
	}
}

func TestVersusUnavailableBeforeFirstLoad(t *testing.T) {
	h := newUnloadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Versus), http.MethodGet, "/versus?teamA=BRA&teamB=ARG", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var got versus.Comparison
	testutil.DecodeJSON(t, rr, &got)
	if got.State != versus.StateUnavailable || got.Error != "upstream down" {
		t.Fatalf("unexpected comparison %+v", got)
	}
}

func TestMatchCount(t *testing.T) {
	h := newLoadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.MatchCount), http.MethodGet, "/matches/count", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got CountResponse
	testutil.DecodeJSON(t, rr, &got)
	if got.Count != 4 || !got.Loaded || got.Label != "Database contains 4 matches" {
		t.Fatalf("unexpected count %+v", got)
	}
}

func TestMatchByID(t *testing.T) {
	h := newLoadedHandler(t)
	router := mux.NewRouter()
	router.HandleFunc("/matches/{id}", h.Match)

	rr := testutil.Serve(router, http.MethodGet, "/matches/3", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got matches.Match
	testutil.DecodeJSON(t, rr, &got)
	if got.ID != "3" || got.Year != "1974" || got.SideOne.Code != "BRA" || got.SideTwo.Goals != 1 {
		t.Fatalf("unexpected match %+v", got)
	}

	rr = testutil.Serve(router, http.MethodGet, "/matches/99", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestMatchByIDUnavailableBeforeFirstLoad(t *testing.T) {
	h := newUnloadedHandler(t)
	router := mux.NewRouter()
	router.HandleFunc("/matches/{id}", h.Match)

	rr := testutil.Serve(router, http.MethodGet, "/matches/3", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestSearchTeamsBlankQuery(t *testing.T) {
	h := newUnloadedHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SearchTeams), http.MethodGet, "/teams/search?q=", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got []teams.Team
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != 0 {
		t.Fatalf("expected no teams for a blank query, got %+v", got)
	}
}
