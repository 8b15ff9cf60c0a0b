// Package config loads the editor configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/tedit/buffer"
	"github.com/iw2rmb/tedit/editor"
	"github.com/iw2rmb/tedit/screen"
)

// Config is the on-disk configuration. Zero values fall back to defaults.
type Config struct {
	HistoryLimit int          `toml:"history_limit"`
	ScrollStep   int          `toml:"scroll_step"`
	Mouse        bool         `toml:"mouse"`
	StatusBar    bool         `toml:"status_bar"`
	Theme        screen.Theme `toml:"theme"`
}

func Default() Config {
	return Config{
		HistoryLimit: buffer.DefaultHistoryLimit,
		ScrollStep:   1,
		Mouse:        true,
		StatusBar:    true,
		Theme:        screen.DefaultTheme(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tedit/config.toml, or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "tedit", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data over the defaults. source names the data in errors.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: source, Err: err}
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	def := Default()
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.ScrollStep <= 0 {
		c.ScrollStep = def.ScrollStep
	}
	if c.Theme.Selection == "" {
		c.Theme.Selection = def.Theme.Selection
	}
	if c.Theme.Status == "" {
		c.Theme.Status = def.Theme.Status
	}
	return c
}

// Editor converts the file settings into an editor configuration.
func (c Config) Editor() editor.Config {
	return editor.Config{
		HistoryLimit: c.HistoryLimit,
		ScrollStep:   c.ScrollStep,
		StatusBar:    c.StatusBar,
	}
}

// ParseError reports a configuration file that is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	var de *toml.DecodeError
	if errors.As(e.Err, &de) {
		row, col := de.Position()
		return fmt.Sprintf("parse config %s at line %d, column %d: %s", e.Path, row, col, de.Error())
	}
	return fmt.Sprintf("parse config %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
