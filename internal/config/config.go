// Package config loads settings from the environment, with an optional .env
// file for local development.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/spf13/viper"

	"github.com/wahek/task-list/internal/store/sqlstore"
)

type Config struct {
	Addr     string `mapstructure:"HTTP_ADDR"`
	DBDriver string `mapstructure:"DB_DRIVER"`

	DBHost string `mapstructure:"DB_HOST"`
	DBPort int    `mapstructure:"DB_PORT"`
	DBUser string `mapstructure:"DB_USER"`
	DBPass string `mapstructure:"DB_PASS"`
	DBName string `mapstructure:"DB_NAME"`

	// DBPath is the database file for the sqlite driver.
	DBPath string `mapstructure:"DB_PATH"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", sqlstore.DriverPostgres)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_PATH", "tasks.db")

	// Viper only unmarshals keys it knows about; bind the ones without
	// defaults so plain environment variables are seen.
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASS", "DB_NAME"} {
		_ = v.BindEnv(key)
	}

	// A missing .env is fine; the environment still applies.
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading .env: %w", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DBDriver == sqlstore.DriverPostgres {
		required := []struct{ name, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_USER", cfg.DBUser},
			{"DB_PASS", cfg.DBPass},
			{"DB_NAME", cfg.DBName},
		}
		for _, r := range required {
			if r.value == "" {
				return Config{}, fmt.Errorf("%s is required", r.name)
			}
		}
	}

	return cfg, nil
}

// DSN renders the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == sqlstore.DriverSQLite {
		return c.DBPath
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	return u.String()
}
