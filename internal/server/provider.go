package server

import (
	"log/slog"

	"github.com/preston-bernstein/worldcup-versus-service/internal/config"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers/fixture"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers/worldcup"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "worldcup":
		return worldcup.NewClient(worldcup.Config{
			BaseURL: cfg.Worldcup.BaseURL,
			Timeout: cfg.Worldcup.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
