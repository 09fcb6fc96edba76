package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Battle   BattleConfig   `mapstructure:"battle"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig covers the HTTP listener.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the battle store. An empty DSN falls back to the
// in-memory store.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// BattleConfig tunes the game rules and housekeeping.
type BattleConfig struct {
	TurnClock         time.Duration `mapstructure:"turn_clock"`
	GraceWindow       time.Duration `mapstructure:"grace_window"`
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
	MaxRounds         int           `mapstructure:"max_rounds"`
	DefaultDifficulty string        `mapstructure:"default_difficulty"`
	RetentionAge      time.Duration `mapstructure:"retention_age"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given YAML file (optional) and
// HOOPGRID_-prefixed environment variables, on top of defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.dsn", "")
	v.SetDefault("battle.turn_clock", 60*time.Second)
	v.SetDefault("battle.grace_window", 2*time.Second)
	v.SetDefault("battle.inactivity_timeout", 120*time.Second)
	v.SetDefault("battle.max_rounds", 5)
	v.SetDefault("battle.default_difficulty", "medium")
	v.SetDefault("battle.retention_age", 72*time.Hour)
	v.SetDefault("battle.cleanup_interval", time.Hour)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("HOOPGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Battle.MaxRounds < 1 {
		return nil, fmt.Errorf("battle.max_rounds must be at least 1, got %d", cfg.Battle.MaxRounds)
	}
	if cfg.Battle.TurnClock <= 0 {
		return nil, fmt.Errorf("battle.turn_clock must be positive, got %s", cfg.Battle.TurnClock)
	}
	return &cfg, nil
}
