// Package config loads editor options from a TOML file and supplies
// defaults when the file or any field is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable editor options.
type Config struct {
	// ScrollJump is the line distance of the half-screen scroll
	// commands.
	ScrollJump int `toml:"scroll_jump"`

	// ScrollMargin is the minimum number of lines kept between the
	// cursor and the top or bottom edge of the window.
	ScrollMargin int `toml:"scroll_margin"`

	// GutterWidth is the width of the line-number column.
	GutterWidth int `toml:"gutter_width"`

	// QuitOnEsc makes Escape in normal mode exit the editor.
	QuitOnEsc bool `toml:"quit_on_esc"`

	// HistoryLimit caps each prompt history ring.
	HistoryLimit int `toml:"history_limit"`

	// HistoryFile is where prompt history persists across sessions.
	// Empty disables persistence.
	HistoryFile string `toml:"history_file"`
}

// Default returns the built-in option values.
func Default() Config {
	return Config{
		ScrollJump:   25,
		ScrollMargin: 8,
		GutterWidth:  4,
		QuitOnEsc:    true,
		HistoryLimit: 50,
		HistoryFile:  defaultHistoryPath(),
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/kyo/kyo.toml or its home-directory equivalent.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kyo", "kyo.toml")
	}
	return ""
}

func defaultHistoryPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "kyo", "history.db")
	}
	return ""
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg.validate()
}

func (c Config) validate() (Config, error) {
	if c.ScrollJump < 1 {
		return c, fmt.Errorf("config: scroll_jump must be positive, got %d", c.ScrollJump)
	}
	if c.ScrollMargin < 0 {
		return c, fmt.Errorf("config: scroll_margin must not be negative, got %d", c.ScrollMargin)
	}
	if c.GutterWidth < 0 {
		return c, fmt.Errorf("config: gutter_width must not be negative, got %d", c.GutterWidth)
	}
	if c.HistoryLimit < 1 {
		return c, fmt.Errorf("config: history_limit must be positive, got %d", c.HistoryLimit)
	}
	return c, nil
}
