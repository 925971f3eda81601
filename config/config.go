// Package config loads liteapi client settings from the environment or a
// config file and turns them into client options.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/steven3002/liteapi-go/liteapi"
)

// EnvPrefix prefixes every environment variable, e.g. LITEAPI_API_KEY.
const EnvPrefix = "LITEAPI"

// Config holds the client configuration.
type Config struct {
	APIKey       string        `envconfig:"API_KEY" mapstructure:"api_key"`
	SearchURL    string        `envconfig:"SEARCH_URL" default:"https://api.liteapi.travel/v3.0" mapstructure:"search_url"`
	BookURL      string        `envconfig:"BOOK_URL" default:"https://book.liteapi.travel/v3.0" mapstructure:"book_url"`
	DashboardURL string        `envconfig:"DASHBOARD_URL" default:"https://da.liteapi.travel" mapstructure:"dashboard_url"`
	LegacyURL    string        `envconfig:"LEGACY_URL" default:"https://api.liteapi.travel/v2.0" mapstructure:"legacy_url"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s" mapstructure:"timeout"`
	UserAgent    string        `envconfig:"USER_AGENT" mapstructure:"user_agent"`

	// Debug logs every request and response through the global zerolog logger.
	Debug bool `envconfig:"DEBUG" mapstructure:"debug"`
}

// FromEnv reads LITEAPI_* variables. The given dotenv files (or .env when
// none are named) are loaded first when present; variables already set in
// the process win.
func FromEnv(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a YAML, JSON or TOML file at path and overlays LITEAPI_*
// environment variables. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("search_url", liteapi.DefaultSearchURL)
	v.SetDefault("book_url", liteapi.DefaultBookURL)
	v.SetDefault("dashboard_url", liteapi.DefaultDashboardURL)
	v.SetDefault("legacy_url", liteapi.DefaultLegacyURL)
	v.SetDefault("timeout", liteapi.DefaultTimeout)
	v.SetDefault("user_agent", "")
	v.SetDefault("debug", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, errors.New("api key is required (env LITEAPI_API_KEY)"))
	}
	for _, f := range []struct{ name, raw string }{
		{"search_url", c.SearchURL},
		{"book_url", c.BookURL},
		{"dashboard_url", c.DashboardURL},
		{"legacy_url", c.LegacyURL},
	} {
		u, err := url.Parse(f.raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be an absolute URL", f.name, f.raw))
		}
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Options converts the configuration into client options.
func (c *Config) Options() []liteapi.Option {
	opts := []liteapi.Option{
		liteapi.WithSearchURL(c.SearchURL),
		liteapi.WithBookURL(c.BookURL),
		liteapi.WithDashboardURL(c.DashboardURL),
		liteapi.WithLegacyURL(c.LegacyURL),
		liteapi.WithTimeout(c.Timeout),
	}
	if c.UserAgent != "" {
		opts = append(opts, liteapi.WithUserAgent(c.UserAgent))
	}
	if c.Debug {
		opts = append(opts, liteapi.WithLogger(liteapi.ZerologLogger(log.Logger)))
	}
	return opts
}

// NewClient validates cfg and constructs a client from it. Extra options
// apply after the configured ones.
func NewClient(cfg *Config, extra ...liteapi.Option) (*liteapi.Client, error) {
	if cfg == nil {
		return nil, errors.New("config: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return liteapi.New(cfg.APIKey, append(cfg.Options(), extra...)...), nil
}
