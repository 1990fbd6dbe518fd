// Package config resolves sheetfont settings from the environment and
// command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jwulff/sheetfont-go/internal/registry"
	"github.com/jwulff/sheetfont-go/internal/render"
	"github.com/spf13/pflag"
)

// Environment variables.
const (
	EnvAssets   = "SHEETFONT_ASSETS"
	EnvManifest = "SHEETFONT_MANIFEST"
	EnvFamily   = "SHEETFONT_FAMILY"
	EnvSize     = "SHEETFONT_SIZE"
	EnvDB       = "SHEETFONT_DB"
	EnvDebug    = "SHEETFONT_DEBUG"
	EnvPixooIP  = "PIXOO_IP"
)

// Config holds the resolved settings.
type Config struct {
	// Assets is the directory sheet paths are relative to.
	Assets string
	// Manifest is a YAML sheet manifest; empty means the shipped Arial set.
	Manifest string
	Family   string
	Size     int
	DB       string
	Debug    bool
	// Builtin uses the built-in tiny font instead of sheet assets.
	Builtin bool
	PixooIP string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Assets: "assets",
		Family: registry.DefaultFamily,
		Size:   registry.DefaultSize,
		DB:     "sheetfont.db",
	}
}

// FromEnv applies environment overrides to the defaults. getenv is usually
// os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	if v := getenv(EnvAssets); v != "" {
		c.Assets = v
	}
	if v := getenv(EnvManifest); v != "" {
		c.Manifest = v
	}
	if v := getenv(EnvFamily); v != "" {
		c.Family = v
	}
	if v := getenv(EnvSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSize, err)
		}
		c.Size = size
	}
	if v := getenv(EnvDB); v != "" {
		c.DB = v
	}
	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v := getenv(EnvPixooIP); v != "" {
		c.PixooIP = v
	}
	return c, nil
}

// BindFlags registers flags on fs whose defaults are the current values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Assets, "assets", "a", c.Assets, "Directory containing glyph sheets")
	fs.StringVarP(&c.Manifest, "manifest", "m", c.Manifest, "YAML sheet manifest (default: shipped Arial sheets)")
	fs.StringVarP(&c.Family, "family", "f", c.Family, "Font family")
	fs.IntVarP(&c.Size, "size", "s", c.Size, "Font point size")
	fs.StringVar(&c.DB, "db", c.DB, "SQLite database path")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.BoolVar(&c.Builtin, "builtin", c.Builtin, "Use the built-in tiny font instead of sheet assets")
}

// Load resolves settings from the environment, then parses args with the
// flags bound on fs. It returns the positional arguments.
func Load(fs *pflag.FlagSet, args []string, getenv func(string) string) (Config, []string, error) {
	c, err := FromEnv(getenv)
	if err != nil {
		return c, nil, err
	}
	c.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, nil, err
	}
	return c, fs.Args(), nil
}

// Sheets returns the manifest's declarations, or the shipped Arial set.
func (c Config) Sheets() ([]registry.Sheet, error) {
	if c.Manifest == "" {
		return registry.Arial, nil
	}
	f, err := os.Open(c.Manifest)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()
	return registry.LoadManifest(f)
}

// Registry builds the configured font registry.
func (c Config) Registry() (*registry.Registry, error) {
	if c.Builtin {
		return render.TinyRegistry()
	}
	sheets, err := c.Sheets()
	if err != nil {
		return nil, err
	}
	return registry.Build(registry.FSLoader{FS: os.DirFS(c.Assets)}, sheets)
}
