// Package config loads xgbtree's runtime configuration from built-in
// defaults, a config file, and environment variables, in that order of
// increasing precedence, via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".xgbtree"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for xgbtree settings.
const envPrefix = "XGBTREE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Config is xgbtree's runtime configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogJSON selects structured JSON logging over human-readable text.
	LogJSON bool `mapstructure:"log_json"`

	// Strict fails loading on any schema detail the parser recognizes but
	// doesn't enforce by default, by running the optional JSON-schema
	// pre-validation pass before the streaming parse.
	Strict bool `mapstructure:"strict"`

	Checkpoint CheckpointConfig `mapstructure:"checkpoint"`

	Observability ObservabilityConfig `mapstructure:"observability"`
}

// CheckpointConfig controls the parsed-model cache.
type CheckpointConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// ObservabilityConfig controls metric and trace export.
type ObservabilityConfig struct {
	ServiceName      string  `mapstructure:"service_name"`
	PrometheusAddr   string  `mapstructure:"prometheus_addr"`
	TraceSampleRatio float64 `mapstructure:"trace_sample_ratio"`
}

// Default values applied before the config file and environment are
// layered on top.
const (
	DefaultLogLevel          = "info"
	DefaultLogJSON           = false
	DefaultStrict            = false
	DefaultCheckpointEnabled = true
	DefaultCheckpointDir     = ".xgbtree-cache"
	DefaultServiceName       = "xgbtree"
	DefaultPrometheusAddr    = ":9464"
	DefaultTraceSampleRatio  = 1.0
)

// Validate checks field-level invariants that mapstructure can't express.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}

	if c.Observability.TraceSampleRatio < 0 || c.Observability.TraceSampleRatio > 1 {
		return fmt.Errorf("config: trace_sample_ratio must be in [0,1], got %v", c.Observability.TraceSampleRatio)
	}

	return nil
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("log_level", DefaultLogLevel)
	viperCfg.SetDefault("log_json", DefaultLogJSON)
	viperCfg.SetDefault("strict", DefaultStrict)

	viperCfg.SetDefault("checkpoint.enabled", DefaultCheckpointEnabled)
	viperCfg.SetDefault("checkpoint.dir", DefaultCheckpointDir)

	viperCfg.SetDefault("observability.service_name", DefaultServiceName)
	viperCfg.SetDefault("observability.prometheus_addr", DefaultPrometheusAddr)
	viperCfg.SetDefault("observability.trace_sample_ratio", DefaultTraceSampleRatio)
}
