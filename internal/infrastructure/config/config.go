// Package config loads service configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Spanner SpannerConfig
	Pricing PricingConfig
	Log     LogConfig
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Name string
	Env  string
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	CORSAllowOrigins []string
}

// SpannerConfig holds the Spanner database identity.
type SpannerConfig struct {
	ProjectID  string
	InstanceID string
	DatabaseID string
}

// PricingConfig holds bulk pricing settings.
type PricingConfig struct {
	// HistoryLimit caps the number of retained price change batches.
	HistoryLimit int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads configuration from config.toml and environment variables.
// Environment variables use the BACKOFFICE_ prefix and override the file,
// e.g. BACKOFFICE_SPANNER_PROJECT_ID.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Missing config file is fine; defaults and env vars apply.
	}

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		HTTP: HTTPConfig{
			Port:             v.GetString("http.port"),
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
		Spanner: SpannerConfig{
			ProjectID:  v.GetString("spanner.project_id"),
			InstanceID: v.GetString("spanner.instance_id"),
			DatabaseID: v.GetString("spanner.database_id"),
		},
		Pricing: PricingConfig{
			HistoryLimit: v.GetInt("pricing.history_limit"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "backoffice-service"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = "8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	// Emulator identity; production refuses to start without explicit values.
	if cfg.App.Env != "production" {
		if cfg.Spanner.ProjectID == "" {
			cfg.Spanner.ProjectID = "test-project"
		}
		if cfg.Spanner.InstanceID == "" {
			cfg.Spanner.InstanceID = "dev-instance"
		}
		if cfg.Spanner.DatabaseID == "" {
			cfg.Spanner.DatabaseID = "backoffice-db"
		}
	}
	if cfg.Pricing.HistoryLimit == 0 {
		cfg.Pricing.HistoryLimit = 50
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func (c *Config) validate() error {
	if c.Pricing.HistoryLimit < 1 {
		return fmt.Errorf("pricing.history_limit must be positive")
	}
	if c.App.Env == "production" {
		if c.Spanner.ProjectID == "" || c.Spanner.InstanceID == "" || c.Spanner.DatabaseID == "" {
			return fmt.Errorf("spanner.project_id, spanner.instance_id and spanner.database_id are required in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("http.cors_allow_origins cannot be '*' in production")
			}
		}
	}
	return nil
}

// DatabasePath returns the fully qualified Spanner database path.
func (s *SpannerConfig) DatabasePath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s",
		s.ProjectID, s.InstanceID, s.DatabaseID)
}
