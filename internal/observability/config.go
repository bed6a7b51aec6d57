package observability

import "github.com/vareth-ml/xgbtree/internal/config"

// Config is the subset of the process configuration Init needs, collapsed
// from config.Config and config.ObservabilityConfig into the fields this
// package actually consumes.
type Config struct {
	ServiceName      string
	Environment      string
	LogLevel         string
	LogJSON          bool
	TraceSampleRatio float64
}

// FromAppConfig builds an observability Config from the process-wide
// config.Config.
func FromAppConfig(cfg *config.Config) Config {
	return Config{
		ServiceName:      cfg.Observability.ServiceName,
		LogLevel:         cfg.LogLevel,
		LogJSON:          cfg.LogJSON,
		TraceSampleRatio: cfg.Observability.TraceSampleRatio,
	}
}
