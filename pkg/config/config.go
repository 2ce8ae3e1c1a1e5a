package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file.
const (
	EnvSessionSecret    = "SESSION_SECRET"
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvWorldIDAppID     = "WORLDID_APP_ID"
)

// APIServerConfig represents the mini-app API server configuration
type APIServerConfig struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Logging        LoggingConfig        `yaml:"logging"`
	Session        SessionConfig        `yaml:"session"`
	Auth           AuthConfig           `yaml:"auth"`
	WorldID        WorldIDConfig        `yaml:"worldid"`
	Streak         StreakConfig         `yaml:"streak"`
	Compliance     ComplianceConfig     `yaml:"compliance"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
	Monitoring     MonitoringConfig     `yaml:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"miniapp" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// SessionConfig contains session cookie settings
type SessionConfig struct {
	Secret     string        `yaml:"secret" validate:"required,min=32"`
	CookieName string        `yaml:"cookie_name" default:"session" validate:"required"`
	TTL        time.Duration `yaml:"ttl" default:"168h"`
	Secure     bool          `yaml:"secure" default:"true"`
}

// AuthConfig contains Sign-In-With-Ethereum settings
type AuthConfig struct {
	// Domain must match the domain line of the signed SIWE message.
	Domain string `yaml:"domain" validate:"required"`
	// ChainID is checked against the message when non-zero.
	ChainID  int64         `yaml:"chain_id"`
	NonceTTL time.Duration `yaml:"nonce_ttl" default:"5m"`
}

// WorldIDConfig contains World ID cloud verification settings
type WorldIDConfig struct {
	Enabled bool          `yaml:"enabled" default:"true"`
	AppID   string        `yaml:"app_id" validate:"required_if=Enabled true"`
	Action  string        `yaml:"action" default:"verify-human"`
	BaseURL string        `yaml:"base_url" default:"https://developer.worldcoin.org" validate:"url"`
	Timeout time.Duration `yaml:"timeout" default:"10s"`
}

// StreakConfig contains daily streak settings
type StreakConfig struct {
	// Timezone is the IANA location used to decide calendar-day boundaries.
	Timezone   string `yaml:"timezone" default:"UTC"`
	MaxRetries int    `yaml:"max_retries" default:"3" validate:"min=1"`
}

// ComplianceConfig contains eligibility rules
type ComplianceConfig struct {
	MinimumAge          int      `yaml:"minimum_age" default:"18" validate:"min=0"`
	RestrictedCountries []string `yaml:"restricted_countries" default:"[\"US\",\"FR\",\"TR\",\"CN\",\"KR\",\"SG\"]" validate:"dive,len=2"`
}

// ReconciliationConfig contains background maintenance settings.
// A zero Interval disables the periodic run; a zero InitialTimeout skips the startup run.
type ReconciliationConfig struct {
	Interval       time.Duration `yaml:"interval" default:"1m"`
	InitialTimeout time.Duration `yaml:"initial_timeout" default:"30s"`
	// NonceRetention keeps expired nonces around for this long before deletion.
	NonceRetention time.Duration `yaml:"nonce_retention" default:"1h"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// Location resolves the configured streak timezone.
func (c *StreakConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid streak.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document on top of the defaults, applies environment
// overrides and validates the result.
func Parse(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnv(&cfg)

	if err := validateAPIServer(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *APIServerConfig) {
	if v := os.Getenv(EnvSessionSecret); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvWorldIDAppID); v != "" {
		cfg.WorldID.AppID = v
	}
	for i, cc := range cfg.Compliance.RestrictedCountries {
		cfg.Compliance.RestrictedCountries[i] = strings.ToUpper(strings.TrimSpace(cc))
	}
}

func validateAPIServer(cfg *APIServerConfig) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s: failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}
	if _, err := cfg.Streak.Location(); err != nil {
		return err
	}
	return nil
}
