// Package config loads rustbrew's optional TOML configuration.
//
// The file is looked up at $XDG_CONFIG_HOME/rustbrew/config.toml (and the
// other XDG config directories) unless a path is given explicitly. Every key
// is optional; a missing file yields [Default].
//
//	endpoint     = "https://formulae.brew.sh/api/formula.json"
//	cache_file   = "core_formulas.json"
//	max_age      = "168h"
//	timeout      = "0s"
//	default_lang = "rust"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/matzehuels/rustbrew/pkg/catalog"
	apperr "github.com/matzehuels/rustbrew/pkg/errors"
	"github.com/matzehuels/rustbrew/pkg/integrations/homebrew"
	"github.com/matzehuels/rustbrew/pkg/snapshot"
)

// relPath is the config file location below each XDG config directory.
const relPath = "rustbrew/config.toml"

// Config holds the settings that shape a run.
type Config struct {
	Endpoint    string   `toml:"endpoint"`     // catalog URL
	CacheFile   string   `toml:"cache_file"`   // snapshot path
	MaxAge      Duration `toml:"max_age"`      // snapshot freshness window
	Timeout     Duration `toml:"timeout"`      // HTTP timeout, 0 = none
	DefaultLang string   `toml:"default_lang"` // query used when -l is omitted

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:    homebrew.DefaultEndpoint,
		CacheFile:   snapshot.DefaultFile,
		MaxAge:      Duration{snapshot.DefaultMaxAge},
		DefaultLang: catalog.DefaultQuery,
	}
}

// Load reads the config file at path, or searches the XDG config
// directories when path is empty. Keys absent from the file keep their
// [Default] values.
//
// An explicit path that does not exist is an error; a file that is merely
// absent from the XDG search is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(relPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if err := apperr.ValidateURL(c.Endpoint); err != nil {
		return err
	}
	if err := apperr.ValidateFilePath(c.CacheFile); err != nil {
		return err
	}
	if c.MaxAge.Duration <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "max_age must be positive, got %s", c.MaxAge.Duration)
	}
	if c.Timeout.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "timeout must not be negative, got %s", c.Timeout.Duration)
	}
	if err := catalog.ValidateQuery(c.DefaultLang); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "default_lang")
	}
	return nil
}

// DefaultPath returns the user config file location searched first by Load.
// Unlike xdg.ConfigFile it never creates directories.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}
