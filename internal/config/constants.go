package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envCollation       = "COLLATION_LOCALE"
	envWorldcupBaseURL = "WORLDCUP_BASE_URL"
	envWorldcupPage    = "WORLDCUP_PAGE_SIZE"
	envWorldcupTimeout = "WORLDCUP_TIMEOUT"
	envWorldcupFlight  = "WORLDCUP_MAX_IN_FLIGHT"
	envWorldcupPages   = "WORLDCUP_MAX_PAGES"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultRefreshInterval = 15 * time.Minute
	defaultProvider        = "fixture"
	defaultCollation       = "es"
	defaultWorldcupBaseURL = "http://localhost:8000/api/v1"
	// The upstream caps pageSize at 100.
	defaultWorldcupPageSize = 100
	defaultWorldcupTimeout  = 10 * time.Second
	defaultWorldcupInFlight = 4
	defaultWorldcupMaxPages = 1000
	defaultMetricsPort      = "9090"
	defaultServiceName      = "worldcup-versus-service"
)
