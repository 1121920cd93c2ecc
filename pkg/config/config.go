// Package config loads the tableplan configuration file.
//
// The file lives at ~/.config/tableplan/config.toml by default; the
// TABLEPLAN_CONFIG environment variable overrides the path. A missing file
// is not an error - every field has a default.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tableplan/tableplan/pkg/errors"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TABLEPLAN_CONFIG"

// Config is the on-disk configuration. Zero values mean "use the default";
// Load fills them in.
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Render   RenderConfig   `toml:"render"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
}

// ViewportConfig frames rendered output.
type ViewportConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

// RenderConfig selects default render options.
type RenderConfig struct {
	Style       string `toml:"style"`
	Grid        bool   `toml:"grid"`
	SeatNumbers bool   `toml:"seat_numbers"`
}

// CacheConfig selects the cache backend. When RedisAddr is set the server
// uses Redis; the CLI always uses the file cache under Dir.
type CacheConfig struct {
	Disabled      bool   `toml:"disabled"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600, Padding: 20},
		Render:   RenderConfig{Style: "simple"},
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the standard config file location, honoring the
// TABLEPLAN_CONFIG override.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tableplan", "config.toml")
}

// Load reads the config file at path, applying defaults for unset fields.
// An empty path means DefaultPath; a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values after an explicit file overrode some
// fields but not others.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Viewport.Width == 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = def.Viewport.Height
	}
	if c.Viewport.Padding == 0 {
		c.Viewport.Padding = def.Viewport.Padding
	}
	if c.Render.Style == "" {
		c.Render.Style = def.Render.Style
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
}
