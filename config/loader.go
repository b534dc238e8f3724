package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = 16181
	DefaultLogLevel      = "info"
	DefaultProvider      = "fiveeleven"
	DefaultAgency        = "SF"
	DefaultTimeoutMS     = 10000
	DefaultStoreDriver   = "memory"
	DefaultStoreFilePath = "users.json"
)

// DefaultPaths are searched in order when LoadAppConfig is given no path.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads the first config file found among paths (DefaultPaths
// when none are given), applies environment overrides and defaults, validates
// the result and stores it in Config. A missing file is not an error; the
// configuration then comes from the environment alone.
func LoadAppConfig(paths ...string) error {
	cfg, err := Load(paths...)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load is LoadAppConfig without touching the global.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AppConfig{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("environment overrides: %w", err)
	}
	applyDefaults(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Transit.VisitProvider == "gtfsrt" && cfg.Transit.TripUpdatesURL == "" {
		return AppConfig{}, errors.New("transit.tripUpdatesURL is required for the gtfsrt visit provider")
	}
	return cfg, nil
}

// LoadEnvFile seeds the process environment from a .env file. Variables that
// are already set win. A missing file is ignored.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Transit.Provider == "" {
		cfg.Transit.Provider = DefaultProvider
	}
	if cfg.Transit.VisitProvider == "" {
		cfg.Transit.VisitProvider = cfg.Transit.Provider
	}
	if cfg.Transit.Agency == "" {
		cfg.Transit.Agency = DefaultAgency
	}
	if cfg.Transit.TimeoutMS == 0 {
		cfg.Transit.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DefaultStoreDriver
	}
	if cfg.Store.Driver == "file" && cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStoreFilePath
	}
}

// Timeout returns the transit request timeout.
func (t TransitConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutMS) * time.Millisecond
}
