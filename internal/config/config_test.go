package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	t.Setenv("REVIEWS_BROWSER_CONFIG", path)
	t.Setenv("REVIEWS_API_URL", "")
	t.Setenv("REVIEWS_REQUEST_TIMEOUT", "")
	t.Setenv("REVIEWS_LOG_FILE", "")
	t.Setenv("REVIEWS_THEME", "")
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	useConfigFile(t, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Empty(t, cfg.QuickApps)
}

func TestLoadFromFile(t *testing.T) {
	useConfigFile(t, `
base_url: "https://reviews.example.com/"
request_timeout: 5s
theme: nord
log_file: /tmp/reviews.log
quick_apps:
  - id: "12345678"
    name: "Weather"
  - id: "  "
  - id: com.example.app
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://reviews.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "/tmp/reviews.log", cfg.LogFile)
	assert.Equal(t, []QuickApp{
		{ID: "12345678", Name: "Weather"},
		{ID: "com.example.app"},
	}, cfg.QuickApps)
}

func TestEnvOverridesFile(t *testing.T) {
	useConfigFile(t, "base_url: http://from-file\ntheme: nord\n")
	t.Setenv("REVIEWS_API_URL", "http://from-env:9000")
	t.Setenv("REVIEWS_REQUEST_TIMEOUT", "250ms")
	t.Setenv("REVIEWS_THEME", "dracula")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "dracula", cfg.Theme)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	useConfigFile(t, "")
	t.Setenv("REVIEWS_REQUEST_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	useConfigFile(t, "base_url: [unterminated\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveKeepsUnmanagedFields(t *testing.T) {
	path := useConfigFile(t, "base_url: http://kept\nquick_apps:\n  - id: \"1\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Theme = "gruvbox"
	cfg.BaseURL = "http://not-saved"
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gruvbox")

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", reloaded.Theme)
	assert.Equal(t, "http://kept", reloaded.BaseURL)
	assert.Equal(t, []QuickApp{{ID: "1"}}, reloaded.QuickApps)
}

func TestSaveExampleConfig(t *testing.T) {
	path := useConfigFile(t, "")
	path = filepath.Join(filepath.Dir(path), "nested", "config.yaml")
	t.Setenv("REVIEWS_BROWSER_CONFIG", path)

	written, err := SaveExampleConfig()
	require.NoError(t, err)
	assert.Equal(t, path, written)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.QuickApps, 2)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)

	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0600))
	_, err = SaveExampleConfig()
	require.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "theme: nord\n", string(data), "existing file is not overwritten")
}

func TestQuickAppLabel(t *testing.T) {
	assert.Equal(t, "123", QuickApp{ID: "123"}.Label())
	assert.Equal(t, "123", QuickApp{ID: "123", Name: "123"}.Label())
	assert.Equal(t, "Weather (123)", QuickApp{ID: "123", Name: "Weather"}.Label())
}
