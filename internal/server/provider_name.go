package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.MatchProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
