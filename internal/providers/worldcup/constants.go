package worldcup

import "time"

const (
	providerName       = "worldcup"
	defaultBaseURL     = "http://localhost:8000/api/v1"
	defaultPageSize    = 100
	maxPageSize        = 100
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
