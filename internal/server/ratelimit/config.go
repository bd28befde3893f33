package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig is the limit of one route family.
type EndpointConfig struct {
	Path   string // exact path, or a prefix when it ends with "/"
	Method string
	Limit  int // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Allowlist       map[string]bool
	Denylist        map[string]bool
	Endpoints       []EndpointConfig
}

// NewConfig builds a limiter configuration with the default endpoint tiers.
// perMinute is the limit of routes without a dedicated tier.
func NewConfig(enabled bool, perMinute int, allowlist []string) *Config {
	return &Config{
		Enabled:         enabled,
		DefaultLimit:    perMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Allowlist:       ParseIPList(strings.Join(allowlist, ",")),
		Denylist:        map[string]bool{},
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the endpoint tiers. The client dashboard fans out into
// one query set per job and gets the strictest limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/health", Method: "GET", Limit: 0},

		{Path: "/v1/clients/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},

		{Path: "/v1/jobs/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/v1/candidates/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/v1/companies/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/v1/submissions/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},

		{Path: "/v1/eval/", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
	}
}

// ParseIPList parses a comma-separated list of client addresses into a set.
func ParseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}

// MatchEndpoint returns the first tier with an exact path match, else the first prefix
// match, else nil.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
