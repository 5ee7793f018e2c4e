package adapter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.OMDb.BaseURL)
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
	assert.Equal(t, "movie", cfg.Search.InitialQuery)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.DetailDebounce)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `omdb:
  api_key: " abc123 "
  timeout: 5s
search:
  initial_query: alien
  detail_debounce: 250ms
ui:
  default_sort: year-desc
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.OMDb.APIKey)
	assert.Equal(t, 5*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, "alien", cfg.Search.InitialQuery)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.DetailDebounce)
	assert.Equal(t, "year-desc", cfg.UI.DefaultSort)
	assert.Equal(t, 3, cfg.Search.MinQueryLength, "unset keys keep defaults")
	assert.True(t, cfg.IsConfigured())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("MARQUEE_OMDB_API_KEY", "from-env")

	cfg, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OMDb.APIKey)
}

func TestLoadConfig_NormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  min_query_length: 0\nomdb:\n  base_url: \"\"\n"), 0o600))

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
	assert.Equal(t, DefaultBaseURL, cfg.OMDb.BaseURL)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.OMDb.APIKey = "saved-key"
	cfg.Search.DetailDebounce = time.Second

	require.NoError(t, saveConfig(viper.New(), cfg, path))

	loaded, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.OMDb.APIKey)
	assert.Equal(t, time.Second, loaded.Search.DetailDebounce)
}

func TestSaveConfig_WritesToLoadedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(APIKeyEnv, "")

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("omdb:\n  api_key: secret\n"), 0o600))

	cfg, err := loadConfig(viper.New(), custom)
	require.NoError(t, err)
	assert.Equal(t, custom, cfg.FilePath())

	cfg.OMDb.APIKey = ""
	require.NoError(t, SaveConfig(cfg))

	reloaded, err := loadConfig(viper.New(), custom)
	require.NoError(t, err)
	assert.Empty(t, reloaded.OMDb.APIKey)

	_, err = os.Stat(filepath.Join(home, ".config", "marquee", "config.yaml"))
	assert.True(t, os.IsNotExist(err), "default config file must not be written")
}

func TestConfig_FilePathDefaultsWhenUnset(t *testing.T) {
	assert.Equal(t, ConfigPath(), DefaultConfig().FilePath())
}

func TestConfig_APIKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	assert.False(t, DefaultConfig().APIKeyFromEnv())

	t.Setenv(APIKeyEnv, "from-env")
	assert.True(t, DefaultConfig().APIKeyFromEnv())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}

func TestNewJSONLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "query", "alien")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"query":"alien"`)
}
