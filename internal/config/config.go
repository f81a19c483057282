// Package config loads the metronav configuration file.
//
// The file is optional TOML, looked up at $XDG_CONFIG_HOME/metronav/config.toml
// (falling back to ~/.config/metronav/config.toml):
//
//	lines = "~/transit/barcelona"
//	reload = "session"
//	allow_duplicate_stations = false
//	log_level = "debug"
//
// Command-line flags override individual values after loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/metronav/metronav/pkg/errors"
)

// AppName names the configuration directory.
const AppName = "metronav"

// Reload policies for interactive sessions.
const (
	ReloadQuery   = "query"
	ReloadSession = "session"
)

// Config holds user settings.
type Config struct {
	// Lines is a lines directory or a single network file.
	Lines string `toml:"lines" validate:"required"`

	// Reload controls when an interactive session rereads Lines: before every
	// query, or once per session.
	Reload string `toml:"reload" validate:"oneof=query session"`

	// AllowDuplicateStations accepts lines that list a station twice.
	AllowDuplicateStations bool `toml:"allow_duplicate_stations"`

	LogLevel string `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Lines:    "./lines",
		Reload:   ReloadQuery,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks field values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	return errors.ValidatePath(c.Lines)
}

// Path returns the default configuration file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file at the
// default location is not an error; a missing file that was named explicitly
// is. Pass an empty path to use the default location.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s does not exist", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key(s) %s", path, strings.Join(keys, ", "))
	}

	cfg.Lines = expandHome(cfg.Lines)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
