// Package config loads the talentbridge configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TALENTBRIDGE_SERVER_PORT.
const EnvPrefix = "TALENTBRIDGE"

// Config is the full runtime configuration. Every field has a default except secrets.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Anonymization AnonymizationConfig `mapstructure:"anonymization"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Fetch         FetchConfig         `mapstructure:"fetch"`
	Evaluation    EvaluationConfig    `mapstructure:"evaluation"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`

	RateLimit          bool     `mapstructure:"rate_limit"`
	RateLimitPerMinute int      `mapstructure:"rate_limit_per_minute"`
	RateLimitAllowlist []string `mapstructure:"rate_limit_allowlist"`
}

// DatabaseConfig points at the marketplace Postgres database.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// AuthConfig holds the shared secret of backend-issued tokens.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

// AnonymizationConfig configures display tokens. An empty key keeps the plain
// truncated candidate id.
type AnonymizationConfig struct {
	DisplayKey string `mapstructure:"display_key"`
}

// LLMConfig configures CV summarization.
type LLMConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// FetchConfig configures company website enrichment.
type FetchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	UseBrowser bool          `mapstructure:"use_browser"`
}

// EvaluationConfig bounds concurrent dashboard evaluation.
type EvaluationConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

var defaults = map[string]any{
	"server.port":                  8080,
	"server.rate_limit":            true,
	"server.rate_limit_per_minute": 600,
	"server.rate_limit_allowlist":  []string{},
	"server.cors_origin":           "*",
	"database.url":                 "",
	"auth.jwt_secret":              "",
	"auth.jwt_expiration_hours":    24,
	"anonymization.display_key":    "",
	"llm.api_key":                  "",
	"llm.model":                    "gemini-2.5-flash",
	"fetch.timeout":                "15s",
	"fetch.use_browser":            false,
	"evaluation.concurrency":       4,
}

// unprefixed env names honoured for keys commonly set by the hosting platform.
var envAliases = map[string][]string{
	"database.url":    {"DATABASE_URL"},
	"auth.jwt_secret": {"JWT_SECRET"},
	"llm.api_key":     {"GEMINI_API_KEY"},
	"server.port":     {"PORT"},
}

// Load reads the optional config file at path (YAML, JSON or TOML by extension), applies
// TALENTBRIDGE_* environment overrides over it and fills the rest from defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, aliases := range envAliases {
		names := append([]string{key, EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, aliases...)
		if err := v.BindEnv(names...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges. Secrets are checked by the commands that need them.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.RateLimit && c.Server.RateLimitPerMinute < 1 {
		errs = append(errs, fmt.Errorf("config error: 'server.rate_limit_per_minute' must be at least 1, got %d", c.Server.RateLimitPerMinute))
	}
	if c.Auth.JWTExpirationHours < 1 {
		errs = append(errs, fmt.Errorf("config error: 'auth.jwt_expiration_hours' must be at least 1, got %d", c.Auth.JWTExpirationHours))
	}
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("config error: 'fetch.timeout' must be positive"))
	}
	if c.Evaluation.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("config error: 'evaluation.concurrency' must be at least 1, got %d", c.Evaluation.Concurrency))
	}
	if len(c.Anonymization.DisplayKey) > 64 {
		errs = append(errs, fmt.Errorf("config error: 'anonymization.display_key' must be at most 64 bytes"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
