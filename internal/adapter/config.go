package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the public OMDb endpoint
const DefaultBaseURL = "https://www.omdbapi.com/"

// APIKeyEnv overrides omdb.api_key from the environment
const APIKeyEnv = "MARQUEE_OMDB_API_KEY"

// Config holds all application configuration
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`

	path string // File this config was loaded from, empty for the default location
}

// OMDbConfig holds movie database connection settings
type OMDbConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // Per-request timeout
}

// SearchConfig holds search and selection behaviour
type SearchConfig struct {
	MinQueryLength int           `mapstructure:"min_query_length"`
	InitialQuery   string        `mapstructure:"initial_query"`
	DetailDebounce time.Duration `mapstructure:"detail_debounce"`
	HistorySize    int           `mapstructure:"history_size"` // Session-only query suggestions
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultSort string   `mapstructure:"default_sort"` // "none", "year-desc", "year-asc"
	ShowPosters bool     `mapstructure:"show_posters"` // Show poster URLs in the detail pane
	Browser     string   `mapstructure:"browser"`      // Command for opening links, empty for system default
	BrowserArgs []string `mapstructure:"browser_args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 15 * time.Second,
		},
		Search: SearchConfig{
			MinQueryLength: 3,
			InitialQuery:   "movie",
			DetailDebounce: 500 * time.Millisecond,
			HistorySize:    50,
		},
		UI: UIConfig{
			DefaultSort: "none",
			ShowPosters: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path overrides the default search locations.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(viper.GetViper(), path)
}

func loadConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. MARQUEE_OMDB_API_KEY
	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()

	switch {
	case v.ConfigFileUsed() != "":
		cfg.path = v.ConfigFileUsed()
	case path != "":
		cfg.path = path
	}
	return cfg, nil
}

// bindEnv registers every key so AutomaticEnv applies during Unmarshal
// even when the key is absent from the config file.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"omdb.api_key", "omdb.base_url", "omdb.timeout",
		"search.min_query_length", "search.initial_query", "search.detail_debounce", "search.history_size",
		"ui.default_sort", "ui.show_posters", "ui.browser", "ui.browser_args",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(c.OMDb.BaseURL) == "" {
		c.OMDb.BaseURL = def.OMDb.BaseURL
	}
	if c.OMDb.Timeout <= 0 {
		c.OMDb.Timeout = def.OMDb.Timeout
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.Search.DetailDebounce < 0 {
		c.Search.DetailDebounce = def.Search.DetailDebounce
	}
	if c.Search.HistorySize <= 0 {
		c.Search.HistorySize = def.Search.HistorySize
	}
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
}

// SaveConfig writes cfg back to the file it was loaded from
func SaveConfig(cfg *Config) error {
	return saveConfig(viper.GetViper(), cfg, cfg.FilePath())
}

func saveConfig(v *viper.Viper, cfg *Config, configFile string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("omdb.api_key", cfg.OMDb.APIKey)
	v.Set("omdb.base_url", cfg.OMDb.BaseURL)
	v.Set("omdb.timeout", cfg.OMDb.Timeout.String())

	v.Set("search.min_query_length", cfg.Search.MinQueryLength)
	v.Set("search.initial_query", cfg.Search.InitialQuery)
	v.Set("search.detail_debounce", cfg.Search.DetailDebounce.String())
	v.Set("search.history_size", cfg.Search.HistorySize)

	v.Set("ui.default_sort", cfg.UI.DefaultSort)
	v.Set("ui.show_posters", cfg.UI.ShowPosters)
	v.Set("ui.browser", cfg.UI.Browser)
	v.Set("ui.browser_args", cfg.UI.BrowserArgs)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return c.OMDb.APIKey != ""
}

// ConfigPath returns the default config file path
func ConfigPath() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// FilePath returns the file SaveConfig writes to
func (c *Config) FilePath() string {
	if c.path != "" {
		return c.path
	}
	return ConfigPath()
}

// APIKeyFromEnv reports whether the API key is supplied by the environment,
// where saving the config cannot remove it.
func (c *Config) APIKeyFromEnv() bool {
	return strings.TrimSpace(os.Getenv(APIKeyEnv)) != ""
}
