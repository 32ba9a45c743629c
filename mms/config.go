// =============================================================================
// config.go - CLI Configuration (mms.toml, .env, environment)
// =============================================================================
//
// Settings are resolved in this order, later sources winning:
//
//  1. DefaultConfig()
//  2. mms.toml, from --config, $MMS_CONFIG, or ./mms.toml when present
//  3. .env in the working directory (loaded into the environment)
//  4. MMS_LOG_LEVEL and MMS_AUTO_ACK from the environment
//  5. --log-level on the command line
//
// Only keys actually present in the TOML file replace defaults, so a file
// that sets just log_level leaves everything else alone.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mmsgo/mms/mmsprotocol"
)

const (
	// defaultConfigFile is looked up in the working directory when neither
	// --config nor $MMS_CONFIG is given.
	defaultConfigFile = "mms.toml"

	// historyFileName is the readline history file in the home directory.
	historyFileName = ".mms_history"

	// historySize is the default maximum number of history entries.
	historySize = 500
)

// Config holds the resolved CLI settings.
type Config struct {
	LogLevel      string
	LogFormat     string
	HistoryFile   string
	HistoryLimit  int
	AutoAck       bool
	Trace         bool
	MaxLineLength int
}

// fileConfig is the mms.toml key mapping.
type fileConfig struct {
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	HistoryFile   string `toml:"history_file"`
	HistoryLimit  int    `toml:"history_limit"`
	AutoAck       bool   `toml:"auto_ack"`
	Trace         bool   `toml:"trace"`
	MaxLineLength int    `toml:"max_line_length"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "console",
		HistoryFile:   filepath.Join(homeDir(), historyFileName),
		HistoryLimit:  historySize,
		AutoAck:       true,
		MaxLineLength: mmsprotocol.MaxLineLength,
	}
}

// loadConfigFile overlays the keys defined in path onto cfg.
func loadConfigFile(path string, cfg Config) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("history_file") {
		cfg.HistoryFile = expandHome(strings.TrimSpace(raw.HistoryFile))
	}
	if meta.IsDefined("history_limit") {
		cfg.HistoryLimit = raw.HistoryLimit
	}
	if meta.IsDefined("auto_ack") {
		cfg.AutoAck = raw.AutoAck
	}
	if meta.IsDefined("trace") {
		cfg.Trace = raw.Trace
	}
	if meta.IsDefined("max_line_length") {
		cfg.MaxLineLength = raw.MaxLineLength
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// LoadConfig resolves the configuration. An explicit path must exist; the
// implicit ./mms.toml is optional.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("MMS_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err == nil || explicit {
		var loadErr error
		cfg, loadErr = loadConfigFile(path, cfg)
		if loadErr != nil {
			return Config{}, loadErr
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if level := strings.TrimSpace(os.Getenv("MMS_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
	if v := strings.TrimSpace(os.Getenv("MMS_AUTO_ACK")); v != "" {
		autoAck, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MMS_AUTO_ACK: %w", err)
		}
		cfg.AutoAck = autoAck
	}

	return cfg, cfg.Validate()
}

// Validate checks values the rest of the CLI relies on.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", c.MaxLineLength)
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}
