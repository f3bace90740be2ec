// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config holds everything tunable from outside the game document itself.
// Gameplay settings (day start hour, week start) live in the saved state;
// these are machine-level knobs.
type Config struct {
	// DBPath overrides the default ~/.questlife.db location.
	DBPath string `envconfig:"DB_PATH"`
	// ExportPath enables a mirrored JSON export written on every save.
	ExportPath string `envconfig:"EXPORT_PATH"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
	// DayCheckCron is the schedule the watch command runs the day check on.
	DayCheckCron string `envconfig:"DAYCHECK_CRON" default:"0 * * * *"`
}

// Load reads QL_-prefixed environment variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ql", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// SetupLogging applies the configured level to the global logger.
func (c *Config) SetupLogging() {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = log.WarnLevel
		log.WithField("level", c.LogLevel).Warn("unknown log level, using warn")
	}
	log.SetLevel(lvl)
}
