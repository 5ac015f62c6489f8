package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const (
	appName    = "movements"
	dbFileName = "movements.db"
	logName    = "movements.log"

	defaultWorkers = 4
	maxWorkers     = 32
)

type Config struct {
	LibrarySources []string `koanf:"library_sources"` // paths to scan for music library
	Database       string   `koanf:"database"`        // empty means XDG data dir
	Workers        int      `koanf:"workers"`         // albums segmented in parallel (1-32, default: 4)
	WriteTags      bool     `koanf:"write_tags"`      // write work/movement tags back to files

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string `koanf:"level"`   // zerolog level name (default: "info")
	File    string `koanf:"file"`    // empty means XDG state dir
	Console bool   `koanf:"console"` // also log to stderr
}

// Load reads the config files. When path is non-empty only that file is
// read and it must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in library_sources
	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}
	cfg.Database = expandPath(cfg.Database)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/movements/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DatabasePath returns the configured database path, defaulting to the XDG
// data directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// LogPath returns the configured log file, defaulting to the XDG state
// directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, logName))
}

// GetWorkers returns the worker count with defaults applied.
func (c *Config) GetWorkers() int {
	switch {
	case c.Workers <= 0:
		return defaultWorkers
	case c.Workers > maxWorkers:
		return maxWorkers
	default:
		return c.Workers
	}
}

// LogLevel parses the configured level, defaulting to info.
func (c *Config) LogLevel() (zerolog.Level, error) {
	name := strings.TrimSpace(strings.ToLower(c.Log.Level))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
