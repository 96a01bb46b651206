package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// DefaultLinkURL is opened by a long press on the AC key
const DefaultLinkURL = "https://web.telegram.org"

// Config holds every tunable of calcvault. Values come from the defaults,
// then the TOML file, then CALCVAULT_* environment variables.
type Config struct {
	Store    string `toml:"store" envconfig:"STORE"`         // "sqlite" or "file"
	DataPath string `toml:"data_path" envconfig:"DATA_PATH"` // database file or document directory

	RevealHoldMS int    `toml:"reveal_hold_ms" envconfig:"REVEAL_HOLD_MS"`
	ItemHoldMS   int    `toml:"item_hold_ms" envconfig:"ITEM_HOLD_MS"`
	LinkHoldMS   int    `toml:"link_hold_ms" envconfig:"LINK_HOLD_MS"`
	LinkURL      string `toml:"link_url" envconfig:"LINK_URL"`

	Bell     bool   `toml:"bell" envconfig:"BELL"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
	LogFile  string `toml:"log_file" envconfig:"LOG_FILE"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Store:        StoreSQLite,
		RevealHoldMS: 2000,
		ItemHoldMS:   600,
		LinkHoldMS:   2000,
		LinkURL:      DefaultLinkURL,
		Bell:         true,
		LogLevel:     "info",
	}
}

// Load builds the configuration. An empty path means DefaultPath(); a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	if err := envconfig.Process("CALCVAULT", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// Short form kept for scripts: CALCVAULT_DATA
	if env := os.Getenv("CALCVAULT_DATA"); env != "" {
		cfg.DataPath = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Store, validation.Required, validation.In(StoreSQLite, StoreFile)),
		validation.Field(&c.RevealHoldMS, validation.Required, validation.Min(100), validation.Max(60000)),
		validation.Field(&c.ItemHoldMS, validation.Required, validation.Min(100), validation.Max(60000)),
		validation.Field(&c.LinkHoldMS, validation.Required, validation.Min(100), validation.Max(60000)),
		validation.Field(&c.LinkURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
	)
}

func httpURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http or https URL")
	}
	return nil
}

// RevealHold is how long the backspace key must be held to reveal the vault
func (c *Config) RevealHold() time.Duration {
	return time.Duration(c.RevealHoldMS) * time.Millisecond
}

// ItemHold is how long a tile must be held to open its context menu
func (c *Config) ItemHold() time.Duration {
	return time.Duration(c.ItemHoldMS) * time.Millisecond
}

// LinkHold is how long the AC key must be held to open LinkURL
func (c *Config) LinkHold() time.Duration {
	return time.Duration(c.LinkHoldMS) * time.Millisecond
}

// ResolvedDataPath returns DataPath with ~ expanded, or the backend's
// default location under the XDG data directory
func (c *Config) ResolvedDataPath() string {
	path := c.DataPath
	if path == "" {
		path = filepath.Join(dataHome(), "calcvault")
		if c.Store == StoreSQLite {
			path = filepath.Join(path, "calcvault.db")
		}
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, rest)
	}
	return path
}

// DefaultPath returns $XDG_CONFIG_HOME/calcvault/config.toml
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "calcvault", "config.toml")
}

// StateDir returns $XDG_STATE_HOME/calcvault, where logs go
func StateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "calcvault")
}

// Init writes cfg to path. It refuses to overwrite an existing file.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func dataHome() string {
	if env := os.Getenv("XDG_DATA_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}
