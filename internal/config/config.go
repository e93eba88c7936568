package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig selects which events the panel shows.
type CatalogConfig struct {
	OrganizerID     string `mapstructure:"organizer_id"`
	DefaultCategory string `mapstructure:"default_category"`
	// File, when set, reads events from a YAML file instead of the database.
	File string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Columns   int
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
	Output string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "eventpanel")
}

// Path returns the config file location: $EVENTPANEL_CONFIG or the default.
func Path() string {
	if p := os.Getenv("EVENTPANEL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "eventpanel", "config.toml")
}

// New returns a viper instance with defaults, config file and env bindings set
// up but not yet read. Callers may bind flags before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "events.db"))
	v.SetDefault("catalog.organizer_id", "")
	v.SetDefault("catalog.default_category", "menu")
	v.SetDefault("catalog.file", "")
	v.SetDefault("ui.columns", 0)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", filepath.Join(dataDir(), "eventpanel.log"))

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("EVENTPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix EVENTPANEL_.
func Load() (Config, error) {
	return LoadFrom(New())
}

// LoadFrom reads the config file of v, if present, and unmarshals it.
func LoadFrom(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(v.ConfigFileUsed()); statErr == nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to Path().
func Save(cfg Config) error {
	return SaveTo(cfg, Path())
}

// SaveTo writes cfg as TOML to path, creating the directory if needed.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.organizer_id", cfg.Catalog.OrganizerID)
	v.Set("catalog.default_category", cfg.Catalog.DefaultCategory)
	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.output", cfg.Log.Output)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
