package config

import (
	"fmt"
	"strings"

	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "INTERVALD_"

// Config is the intervald configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Schedules SchedulesConfig `koanf:"schedules"`
	Evaluator EvaluatorConfig `koanf:"evaluator"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string `koanf:"type"` // postgres | memory
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type SchedulesConfig struct {
	ConfigDir      string `koanf:"config_dir"`
	MaxOccurrences int    `koanf:"max_occurrences"`
	Horizon        string `koanf:"horizon"` // interval text, e.g. "10 years"
}

type EvaluatorConfig struct {
	WorkerCount  int `koanf:"worker_count"`
	MaxBatchSize int `koanf:"max_batch_size"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// HorizonInterval returns the parsed occurrence horizon. Only valid after
// Validate has succeeded.
func (c SchedulesConfig) HorizonInterval() interval.Value {
	v, err := interval.Parse(c.Horizon)
	if err != nil {
		return interval.Zero
	}
	return v
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for postgres")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	default:
		return fmt.Errorf("unsupported database.type %q (must be postgres or memory)", c.Database.Type)
	}

	if c.Schedules.MaxOccurrences <= 0 {
		return fmt.Errorf("schedules.max_occurrences must be > 0")
	}
	horizon, err := interval.Parse(c.Schedules.Horizon)
	if err != nil {
		return fmt.Errorf("invalid schedules.horizon: %w", err)
	}
	if horizon.IsZero() {
		return fmt.Errorf("schedules.horizon must be non-zero")
	}

	if c.Evaluator.WorkerCount <= 0 {
		return fmt.Errorf("evaluator.worker_count must be > 0")
	}
	if c.Evaluator.MaxBatchSize <= 0 {
		return fmt.Errorf("evaluator.max_batch_size must be > 0")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}

	return nil
}

// Load builds the config from defaults, an optional YAML file and
// INTERVALD_* environment variables (double underscore separates levels,
// e.g. INTERVALD_DATABASE__DSN), then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":               8080,
		"server.host":               "0.0.0.0",
		"server.max_body_size_mb":   1,
		"server.mode":               "release",
		"database.type":             "memory",
		"database.dsn":              "",
		"database.max_open_conns":   10,
		"database.max_idle_conns":   5,
		"database.auto_migrate":     true,
		"schedules.config_dir":      "./config/schedules",
		"schedules.max_occurrences": 500,
		"schedules.horizon":         "10 years",
		"evaluator.worker_count":    8,
		"evaluator.max_batch_size":  1000,
		"metrics.enabled":           true,
		"metrics.path":              "/metrics",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
