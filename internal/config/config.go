package config

import (
	"time"

	"github.com/spf13/viper"

	"breast-cancer-predictor/internal/core/domain"
)

type Config struct {
	Server ServerConfig
	Models ModelsConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	GinMode         string
	ShutdownTimeout time.Duration
}

// ModelsConfig holds the bundle path of each variant.
type ModelsConfig struct {
	FullPath    string
	ReducedPath string
}

type LoggerConfig struct {
	Level  string
	Format string
	// File enables rotated file output in addition to stderr when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MODEL_FULL_PATH", domain.DefaultFullModelPath)
	v.SetDefault("MODEL_REDUCED_PATH", domain.DefaultReducedModelPath)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)
	v.SetDefault("LOGGER_MAX_AGE_DAYS", 28)

	// Env
	v.AutomaticEnv()

	shutdown, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdown = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			GinMode:         v.GetString("GIN_MODE"),
			ShutdownTimeout: shutdown,
		},
		Models: ModelsConfig{
			FullPath:    v.GetString("MODEL_FULL_PATH"),
			ReducedPath: v.GetString("MODEL_REDUCED_PATH"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOGGER_MAX_AGE_DAYS"),
		},
	}

	return cfg, nil
}
