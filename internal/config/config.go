// Package config resolves viewer settings with the usual precedence:
// built-in defaults, then an optional TOML file, then MDVIEW_* env vars.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mithrel/mdview/internal/cleanup"
)

// Config is the resolved, typed view of the settings a run needs.
type Config struct {
	// CleanupDelay is how long transient artifacts survive after display.
	CleanupDelay time.Duration
	// Style is the terminal rendering style for --tty.
	Style string
	// BrowserCommand overrides the platform default-open mechanism.
	BrowserCommand string
	// Window size for native-window mode.
	WindowWidth  int
	WindowHeight int
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents,
// and env.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdview"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdview"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MDVIEW_* (highest among these sources).
	// cleanup_delay maps to MDVIEW_CLEANUP_DELAY.
	v.SetEnvPrefix("mdview")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// FromViper converts resolved settings into a Config, normalizing the
// values that have hard floors. A non-numeric or non-positive cleanup
// delay falls back to the default rather than erroring.
func FromViper(v *viper.Viper) Config {
	delay := cleanup.DefaultDelay
	if secs := v.GetInt("cleanup_delay"); secs > 0 {
		delay = time.Duration(secs) * time.Second
	}
	width := v.GetInt("window.width")
	if width <= 0 {
		width = 1100
	}
	height := v.GetInt("window.height")
	if height <= 0 {
		height = 800
	}
	return Config{
		CleanupDelay:   delay,
		Style:          v.GetString("style"),
		BrowserCommand: v.GetString("browser_command"),
		WindowWidth:    width,
		WindowHeight:   height,
	}
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "mdview", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "cleanup_delay", Default: 30, Comment: "Seconds before temporary HTML files are deleted after display"},
		{Key: "style", Default: "auto", Comment: "Terminal rendering style for --tty: auto, dark, light, notty, or a named glamour style"},
		{Key: "browser_command", Default: "", Comment: "Command used to open the browser; empty uses the platform default"},

		{Key: "window.width", Default: 1100, Comment: "Native window width in pixels"},
		{Key: "window.height", Default: 800, Comment: "Native window height in pixels"},
	}
}
