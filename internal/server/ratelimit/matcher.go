package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate limit configuration for a request path and
// method, or nil when the request is not rate limited. The default configs
// name exact paths ("/resume", "/jobs/search"); a configured path ending in
// "/" acts as a prefix, so "/jobs/" would cover every jobs route at once.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health probe is never rate limited, regardless of configuration.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0, // Unlimited
			Window: 0,
			Burst:  0,
		}
	}

	// Exact path wins over a prefix entry.
	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && cfg.Method == method {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") {
			if strings.HasPrefix(path, cfg.Path) {
				return cfg
			}
		}
	}

	return nil
}
