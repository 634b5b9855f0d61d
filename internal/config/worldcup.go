package config

import "time"

// WorldcupConfig controls how we reach the historical match-listing API.
type WorldcupConfig struct {
	BaseURL     string        `env:"BASE_URL" env-default:"http://localhost:8000/api/v1"`
	PageSize    int           `env:"PAGE_SIZE" env-default:"100"`
	Timeout     time.Duration `env:"TIMEOUT" env-default:"10s"`
	MaxInFlight int           `env:"MAX_IN_FLIGHT" env-default:"4"`
	MaxPages    int           `env:"MAX_PAGES" env-default:"1000"`
}

func (w *WorldcupConfig) normalize() {
	if w.BaseURL == "" {
		w.BaseURL = defaultWorldcupBaseURL
	}
	if w.PageSize <= 0 || w.PageSize > defaultWorldcupPageSize {
		w.PageSize = defaultWorldcupPageSize
	}
	if w.Timeout <= 0 {
		w.Timeout = defaultWorldcupTimeout
	}
	if w.MaxInFlight <= 0 {
		w.MaxInFlight = defaultWorldcupInFlight
	}
	if w.MaxPages <= 0 {
		w.MaxPages = defaultWorldcupMaxPages
	}
}
