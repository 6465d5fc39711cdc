package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"agegate/pkg/domain"
	dErrors "agegate/pkg/domain-errors"
	"agegate/pkg/platform/middleware/metadata"
)

// Config captures server and validator settings read from the environment.
type Config struct {
	// Environment is reported by the health endpoint.
	Environment string `env:"AGEGATE_ENVIRONMENT" env-default:"development"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"AGEGATE_LOG_LEVEL" env-default:"info"`

	HTTP struct {
		Addr            string        `env:"AGEGATE_ADDR" env-default:":8080"`
		RequestTimeout  time.Duration `env:"AGEGATE_REQUEST_TIMEOUT" env-default:"30s"`
		ShutdownTimeout time.Duration `env:"AGEGATE_SHUTDOWN_TIMEOUT" env-default:"10s"`
		MaxBodyBytes    int64         `env:"AGEGATE_MAX_BODY_BYTES" env-default:"1024"`
		// TrustedProxies lists CIDRs allowed to set X-Forwarded-For.
		TrustedProxies []string `env:"AGEGATE_TRUSTED_PROXIES" env-separator:","`
	}

	DOB struct {
		// ReferenceDate anchors the age window (YYYY-MM-DD). Empty means today.
		ReferenceDate string `env:"AGEGATE_REFERENCE_DATE"`
		MinAge        int    `env:"AGEGATE_MIN_AGE" env-default:"18"`
		MaxAge        int    `env:"AGEGATE_MAX_AGE" env-default:"84"`
	}
}

// Load reads the configuration from environment variables so main stays lean.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Bounds().Validate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if _, err := cfg.TrustedProxies(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Bounds returns the configured age window.
func (c *Config) Bounds() domain.AgeBounds {
	return domain.AgeBounds{Min: c.DOB.MinAge, Max: c.DOB.MaxAge}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidConfiguration,
			fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	return level, nil
}

// TrustedProxies parses HTTP.TrustedProxies.
func (c *Config) TrustedProxies() ([]netip.Prefix, error) {
	prefixes, err := metadata.ParsePrefixes(c.HTTP.TrustedProxies)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidConfiguration, "trusted proxies must be CIDR prefixes")
	}
	return prefixes, nil
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
