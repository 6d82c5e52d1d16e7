// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// LineWrap enables soft wrapping of long lines. Defaults to on; the
	// runtime toggle still works either way.
	LineWrap *bool `toml:"line_wrap"`
	// TabWidth is the render width of a tab stop. Defaults to 4.
	TabWidth int `toml:"tab_width"`
}

// LineWrapOrDefault returns the configured wrap flag or true if unset.
func (e EditorConfig) LineWrapOrDefault() bool {
	if e.LineWrap == nil {
		return true
	}
	return *e.LineWrap
}

// TabWidthOrDefault returns the configured tab width or 4 if unset.
func (e EditorConfig) TabWidthOrDefault() int {
	if e.TabWidth <= 0 {
		return 4
	}
	return e.TabWidth
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma highlighting theme used for markdown notes.
	// UI chrome colors are derived from it. Defaults to "vulcan" if unset.
	SyntaxTheme string `toml:"syntax_theme"`
	// SelectionBG overrides the selection background, as a #rrggbb color.
	SelectionBG string `toml:"selection_bg"`
	// StatusFG overrides the status bar foreground, as a #rrggbb color.
	StatusFG string `toml:"status_fg"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or "vulcan" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "vulcan"
	}
	return u.SyntaxTheme
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. A missing file (or empty path) yields the defaults; a file that
// exists but does not parse or validate is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		dir, err := DataDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < 0 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width=%d must be between 0 and 16", c.Editor.TabWidth))
	}

	for name, value := range map[string]string{
		"ui.selection_bg": c.UI.SelectionBG,
		"ui.status_fg":    c.UI.StatusFG,
	} {
		if value != "" && !hexColorRe.MatchString(value) {
			errs = append(errs, fmt.Errorf("%s=%q must be a #rrggbb color", name, value))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"QUILL_SYNTAX_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
		{"QUILL_LINE_WRAP", func(v string) {
			switch v {
			case "1", "true", "on":
				t := true
				cfg.Editor.LineWrap = &t
			case "0", "false", "off":
				f := false
				cfg.Editor.LineWrap = &f
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the quill data directory (~/.config/quill).
// QUILL_DATA_DIR overrides it.
func DataDir() (string, error) {
	if dir := os.Getenv("QUILL_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quill"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
