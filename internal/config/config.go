package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/artside/internal/viewport"
)

const configFile = ".artside/config.json"

// envPrefix is prepended to every environment override, e.g. ARTSIDE_THEME.
const envPrefix = "ARTSIDE_"

// Config holds the gallery settings. Zero values mean "use the default".
type Config struct {
	CatalogPath      string `json:"catalog_path,omitempty"`
	AssetDir         string `json:"asset_dir,omitempty"`
	Theme            string `json:"theme,omitempty"`
	CompactThreshold int    `json:"compact_threshold,omitempty"`
	CellWidth        int    `json:"cell_width,omitempty"`
	CloseDelayMS     int    `json:"close_delay_ms,omitempty"`
	Strict           bool   `json:"strict,omitempty"`
	DisableMouse     bool   `json:"disable_mouse,omitempty"`
	DisableArrows    bool   `json:"disable_arrows,omitempty"`
	LogFile          string `json:"log_file,omitempty"`
	LogLevel         string `json:"log_level,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		AssetDir:         "public",
		Theme:            "golden",
		CompactThreshold: viewport.DefaultThreshold,
		CellWidth:        viewport.DefaultCellWidth,
		CloseDelayMS:     300,
		LogLevel:         "info",
	}
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk, filling unset fields with defaults.
func Load(baseDir string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	cfg.merge(&file)
	return cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// merge copies every non-zero field of o onto c.
func (c *Config) merge(o *Config) {
	if o.CatalogPath != "" {
		c.CatalogPath = o.CatalogPath
	}
	if o.AssetDir != "" {
		c.AssetDir = o.AssetDir
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.CompactThreshold > 0 {
		c.CompactThreshold = o.CompactThreshold
	}
	if o.CellWidth > 0 {
		c.CellWidth = o.CellWidth
	}
	if o.CloseDelayMS > 0 {
		c.CloseDelayMS = o.CloseDelayMS
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	c.Strict = c.Strict || o.Strict
	c.DisableMouse = c.DisableMouse || o.DisableMouse
	c.DisableArrows = c.DisableArrows || o.DisableArrows
}

// ApplyEnv overrides fields from ARTSIDE_* variables using lookup (normally
// os.LookupEnv). Malformed numbers and booleans are reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s%s: want a positive integer, got %q", envPrefix, name, v)
		}
		*dst = n
		return nil
	}
	flag := func(name string, dst *bool) error {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: want a boolean, got %q", envPrefix, name, v)
		}
		*dst = b
		return nil
	}

	str("CATALOG", &c.CatalogPath)
	str("ASSETS", &c.AssetDir)
	str("THEME", &c.Theme)
	str("LOG_FILE", &c.LogFile)
	str("LOG_LEVEL", &c.LogLevel)
	for _, err := range []error{
		num("COMPACT_THRESHOLD", &c.CompactThreshold),
		num("CELL_WIDTH", &c.CellWidth),
		num("CLOSE_DELAY_MS", &c.CloseDelayMS),
		flag("STRICT", &c.Strict),
		flag("NO_MOUSE", &c.DisableMouse),
		flag("NO_ARROWS", &c.DisableArrows),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// CloseDelay returns the close-finalization delay.
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.CloseDelayMS) * time.Millisecond
}
