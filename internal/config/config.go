// Package config loads daemon configuration from file, environment
// and flags via viper. Flags take precedence over environment, which
// takes precedence over the config file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything the daemon needs to run.
type Config struct {
	Home            string        `mapstructure:"home"`
	ListenAddr      string        `mapstructure:"listen_addr"`
	LogLevel        string        `mapstructure:"log_level"`
	Admin           string        `mapstructure:"admin"`
	FeeBps          uint32        `mapstructure:"fee_bps"`
	CanonicalPairs  bool          `mapstructure:"canonical_pairs"`
	CustodyAccount  string        `mapstructure:"custody_account"`
	Principals      []string      `mapstructure:"principals"`
	EventBuffer     int           `mapstructure:"event_buffer"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Home:            ".piswap",
		ListenAddr:      "127.0.0.1:8080",
		LogLevel:        "info",
		FeeBps:          100,
		EventBuffer:     1024,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// DBDir returns the database directory under the home dir.
func (c Config) DBDir() string {
	return filepath.Join(c.Home, "data")
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory is required")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.FeeBps > 10000 {
		return fmt.Errorf("fee_bps %d exceeds 10000", c.FeeBps)
	}
	return nil
}

// Load reads configuration from an optional file, PISWAP_* environment
// variables and the given flag set.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("home", defaults.Home)
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("fee_bps", defaults.FeeBps)
	v.SetDefault("event_buffer", defaults.EventBuffer)
	v.SetDefault("read_timeout", defaults.ReadTimeout)
	v.SetDefault("write_timeout", defaults.WriteTimeout)
	v.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)

	v.SetEnvPrefix("PISWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
		// Hyphenated flag names map onto underscore config keys.
		aliases := map[string]string{
			"log-level":       "log_level",
			"canonical-pairs": "canonical_pairs",
			"listen":          "listen_addr",
		}
		for flagName, key := range aliases {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// Durations may arrive as plain strings from env or file.
	if raw := v.GetString("read_timeout"); raw != "" {
		cfg.ReadTimeout = cast.ToDuration(raw)
	}
	if raw := v.GetString("write_timeout"); raw != "" {
		cfg.WriteTimeout = cast.ToDuration(raw)
	}
	if raw := v.GetString("shutdown_timeout"); raw != "" {
		cfg.ShutdownTimeout = cast.ToDuration(raw)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
