package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/app/versus"
	"github.com/preston-bernstein/worldcup-versus-service/internal/config"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/poller"
	"github.com/preston-bernstein/worldcup-versus-service/internal/testutil"
)

type stubProvider struct {
	items  []matches.Match
	notify chan struct{}
	once   sync.Once
}

func (s *stubProvider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if s.notify != nil {
		s.once.Do(func() { close(s.notify) })
	}
	return matches.Page{Number: page, Matches: s.items, TotalPages: 1}, nil
}

func (s *stubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, nil
}

type errProvider struct{}

func (e *errProvider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	return matches.Page{}, context.DeadlineExceeded
}

func (e *errProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, context.DeadlineExceeded
}

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	addr          string
	handler       http.Handler
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return s.addr
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return s.handler
}

func waitForLoad(t *testing.T, srv *Server) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for !srv.Session().Loaded() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for first refresh")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestServerServesHealthAndComparison(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &stubProvider{
		items:  testutil.BrazilArgentina(),
		notify: make(chan struct{}),
	}

	cfg := config.Config{RefreshInterval: time.Hour}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)
	defer srv.poller.Stop(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}
	waitForLoad(t, srv)

	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	versusRec := httptest.NewRecorder()
	router.ServeHTTP(versusRec, httptest.NewRequest(http.MethodGet, "/versus?teamA=ARG&teamB=BRA", nil))
	if versusRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /versus, got %d", versusRec.Code)
	}

	var got versus.Comparison
	if err := json.NewDecoder(versusRec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode comparison: %v", err)
	}
	if got.Summary.Total != 3 || got.KPIs.DatabaseSize != 4 {
		t.Fatalf("unexpected comparison %+v", got)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil || srv.Session() == nil {
		t.Fatalf("expected server with handler and session")
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config{RefreshInterval: time.Hour}
	srv := newServerWithProvider(cfg, nil, &errProvider{})
	srv.poller.Start(ctx)
	defer srv.poller.Stop(ctx)

	deadline := time.Now().Add(500 * time.Millisecond)
	for srv.Session().LastError() == nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for failed refresh")
		}
		time.Sleep(2 * time.Millisecond)
	}

	router := srv.Handler()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/versus?teamA=BRA&teamB=ARG", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from /versus before first load, got %d", rec.Code)
	}

	readyRec := httptest.NewRecorder()
	router.ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if readyRec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from /ready, got %d", readyRec.Code)
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &stubPoller{}

	blocking := &blockingHTTPServer{
		addr:    ":0",
		handler: http.NewServeMux(),
		unblock: make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.shutdownCalls)
	}
	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &stubPoller{err: errors.New("stop failure")}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

type errHTTPServer struct {
	shutdownCalls int
}

func (e *errHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *errHTTPServer) Shutdown(ctx context.Context) error {
	e.shutdownCalls++
	return nil
}

func (e *errHTTPServer) Addr() string {
	return ":0"
}

func (e *errHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	plr := &stubPoller{}
	httpSrv := &errHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &stubPoller{}
	httpSrv := &closeableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.startCalls)
	}
	if plr.stopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}
