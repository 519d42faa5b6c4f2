// Package config resolves runtime settings for the todo API.
//
// Values are applied in priority order:
//  1. Defaults
//  2. TOML config file (-config flag or TODO_CONFIG)
//  3. Environment variables, including those loaded from a .env file
//  4. CLI flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultAddr      = ":3000"
	DefaultDBPath    = "todoApplication.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultEnvFile   = ".env"
)

// Config holds the resolved settings.
type Config struct {
	Addr      string `toml:"addr"`
	DBPath    string `toml:"db_path"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

type flagValues struct {
	config    string
	envFile   string
	addr      string
	dbPath    string
	logLevel  string
	logFormat string
}

// Load parses args with flags and merges every configuration source.
func Load(flags *flag.FlagSet, args []string) (Config, error) {
	var fv flagValues
	flags.StringVar(&fv.config, "config", "", "Path to a TOML config file")
	flags.StringVar(&fv.envFile, "env-file", DefaultEnvFile, "Path to a .env file")
	flags.StringVar(&fv.addr, "addr", DefaultAddr, "HTTP listen address")
	flags.StringVar(&fv.dbPath, "db", DefaultDBPath, "Path to sqlite database file")
	flags.StringVar(&fv.logLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&fv.logFormat, "log-format", DefaultLogFormat, "Log format (text or json)")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Config{}
	setDefaults(&cfg)

	if err := loadDotEnv(fv.envFile); err != nil {
		return Config{}, err
	}

	configFile := fv.config
	if configFile == "" {
		configFile = envOrDefault("TODO_CONFIG", "")
	}
	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	loadFromEnv(&cfg)
	applyFlags(&cfg, flags, fv)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Addr = DefaultAddr
	cfg.DBPath = DefaultDBPath
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadDotEnv populates the environment from path without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// applyFlags copies only the flags that were set explicitly.
func applyFlags(cfg *Config, flags *flag.FlagSet, fv flagValues) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = fv.addr
		case "db":
			cfg.DBPath = fv.dbPath
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "log-format":
			cfg.LogFormat = fv.logFormat
		}
	})
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
