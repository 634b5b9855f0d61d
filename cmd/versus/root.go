package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/worldcup-versus-service/internal/config"
	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
	"github.com/preston-bernstein/worldcup-versus-service/internal/server"
	"github.com/preston-bernstein/worldcup-versus-service/internal/session"
)

type rootOptions struct {
	baseURL  string
	pageSize int
	provider string
	locale   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "versus",
		Short:         "World Cup head-to-head comparisons",
		Long:          "Load every historical World Cup match and compare two national teams.\n\n" + config.Description(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.register(cmd)
	cmd.AddCommand(newTeamsCmd(opts))
	cmd.AddCommand(newCompareCmd(opts))
	return cmd
}

func (o *rootOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.baseURL, "base-url", "", "match API base URL (overrides WORLDCUP_BASE_URL)")
	flags.IntVar(&o.pageSize, "page-size", 0, "records per page, at most 100 (overrides WORLDCUP_PAGE_SIZE)")
	flags.StringVar(&o.provider, "provider", "", "data source: worldcup or fixture (overrides PROVIDER)")
	flags.StringVar(&o.locale, "locale", "", "collation locale for the roster (overrides COLLATION_LOCALE)")
}

// loadConfig reads .env and the environment, then applies any flags set on cmd.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Worldcup.BaseURL = o.baseURL
	}
	if flags.Changed("page-size") {
		cfg.Worldcup.PageSize = o.pageSize
	}
	if flags.Changed("provider") {
		cfg.Provider = o.provider
	}
	if flags.Changed("locale") {
		cfg.CollationLocale = o.locale
	}
	return cfg, nil
}

// load builds a session and runs the initial aggregation. When only the
// aggregation fails, the session is still returned with the error so callers
// can render the unavailable state before failing.
func (o *rootOptions) load(cmd *cobra.Command) (*session.Session, providers.DataProvider, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := logging.NewLogger(logging.Config{
		Level:  level,
		Format: os.Getenv("LOG_FORMAT"),
		Output: cmd.ErrOrStderr(),
	})

	sess, provider := server.NewSession(cfg, logger, nil)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := sess.Refresh(ctx); err != nil {
		logger.Warn("initial load failed", slog.String("error", err.Error()))
		return sess, provider, fmt.Errorf("initial load: %w", err)
	}
	return sess, provider, nil
}
