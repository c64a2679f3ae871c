package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "RATE_LIMIT_DEFAULT_WINDOW"
	EnvExtractLimit    = "RATE_LIMIT_EXTRACT_LIMIT"
	EnvCleanupInterval = "RATE_LIMIT_CLEANUP_INTERVAL"
	EnvWhitelist       = "RATE_LIMIT_WHITELIST"
	EnvBlacklist       = "RATE_LIMIT_BLACKLIST"
)

// ExtractPath is the route that runs the analyzer.
const ExtractPath = "/v1/resumes/extract"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; zero means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the limits used when no environment overrides are set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(60),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Extraction is the
// only expensive route; everything else falls back to the default limit.
func DefaultEndpointConfigs(extractPerMinute int) []EndpointConfig {
	return []EndpointConfig{
		{Path: ExtractPath, Method: http.MethodPost, Limit: extractPerMinute, Window: time.Minute, Burst: 10},
	}
}

// LoadConfig builds a Config from RATE_LIMIT_* variables read through getenv.
// Unparseable values keep their defaults.
func LoadConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()
	env := envReader(getenv)

	cfg.Enabled = env.bool(EnvEnabled, cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.DefaultLimit = env.int(EnvDefaultLimit, cfg.DefaultLimit)
	cfg.DefaultWindow = env.duration(EnvDefaultWindow, cfg.DefaultWindow)
	cfg.CleanupInterval = env.duration(EnvCleanupInterval, cfg.CleanupInterval)
	cfg.EndpointConfigs = DefaultEndpointConfigs(env.int(EnvExtractLimit, cfg.EndpointConfigs[0].Limit))
	cfg.Whitelist = parseIPList(getenv(EnvWhitelist))
	cfg.Blacklist = parseIPList(getenv(EnvBlacklist))

	return cfg
}

type envReader func(string) string

func (e envReader) int(key string, def int) int {
	if v, err := strconv.Atoi(e(key)); err == nil {
		return v
	}
	return def
}

func (e envReader) bool(key string, def bool) bool {
	if v, err := strconv.ParseBool(e(key)); err == nil {
		return v
	}
	return def
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(e(key)); err == nil {
		return v
	}
	return def
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
