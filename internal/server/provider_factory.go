package server

import (
	"log/slog"

	"github.com/preston-bernstein/worldcup-versus-service/internal/config"
	"github.com/preston-bernstein/worldcup-versus-service/internal/metrics"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (in-flight cap + metrics).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.MatchProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	limited := providers.NewLimitedProvider(base, cfg.Worldcup.MaxInFlight, name, f.logger)
	return providers.NewInstrumentedProvider(limited, f.logger, f.metrics, name)
}
