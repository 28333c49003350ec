package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a configuration allowing perSecond requests per client with
// the given burst. perSecond <= 0 disables limiting.
func NewConfig(perSecond float64, burst int, whitelist ...string) *Config {
	if perSecond <= 0 {
		return &Config{Enabled: false}
	}
	if burst <= 0 {
		burst = int(perSecond)
		if burst < 1 {
			burst = 1
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    int(perSecond * 60),
		DefaultWindow:   time.Minute,
		DefaultBurst:    burst,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       parseIPList(strings.Join(whitelist, ",")),
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Batch ranking is the most expensive call.
		{Path: "/jobs/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 5},
		{Path: "/jobs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 5},
		// Document decoding and extraction.
		{Path: "/extract", Method: "POST", Limit: 120, Window: time.Minute, Burst: 10},
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
