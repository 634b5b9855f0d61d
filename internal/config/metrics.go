package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" env-default:"true"`
	Port         string `env:"METRICS_PORT" env-default:"9090"`
	OtlpEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" env-default:"worldcup-versus-service"`
	OtlpInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
}

func (m *MetricsConfig) normalize() {
	if m.Port == "" {
		m.Port = defaultMetricsPort
	}
	if m.ServiceName == "" {
		m.ServiceName = defaultServiceName
	}
}
