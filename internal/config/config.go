package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Menu
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string // "sqlite" or "postgres"
		Path     string // sqlite file path
		DSN      string // postgres connection string
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Log struct {
		Level string // zerolog level name
	}
	Menu struct {
		LoadingDelay time.Duration // cosmetic pause after write operations, 0 disables it
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("db_log_level", "silent")
	v.SetDefault("log_level", "warn") // Keep the interactive screen clean
	v.SetDefault("loading_delay", "0s")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
		Menu: Menu{
			LoadingDelay: v.GetDuration("LOADING_DELAY"),
		},
	}
}
