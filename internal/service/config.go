package service

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

// Config is read from the system's environment variables.
type Config struct {
	Port       int    `env:"PORT"        envDefault:"8080"`
	DBPath     string `env:"DBPATH"      envDefault:"contactmgr.db"`
	DBDriver   string `env:"DBDRIVER"    envDefault:"sqlite3"`
	GinLogging string `env:"GIN_LOGGING" envDefault:"on"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// StoreConfig returns the part of the configuration that selects the database.
func (c Config) StoreConfig() store.Config {
	return store.Config{Path: c.DBPath, Driver: c.DBDriver}
}
