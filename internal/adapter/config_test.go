package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.baserow.io", cfg.Source.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Ads.AcquireTimeout)
	assert.Equal(t, 10*time.Second, cfg.Ads.InitTimeout)
	assert.Equal(t, 8.0, cfg.Ads.CellWidthPx)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), `
source:
  table_id: "12345"
  token: from-file
  timeout: 5s
ads:
  platform: android
  pixel_density: 2.5
logging:
  level: DEBUG
`)
	t.Setenv("GORESAN_SOURCE_TOKEN", "from-env")
	t.Setenv("GORESAN_ADS_UNIT_ID", "unit-7")

	cfg, err := loadConfig(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)

	assert.Equal(t, "12345", cfg.Source.TableID)
	assert.Equal(t, "from-env", cfg.Source.Token)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "android", cfg.Ads.Platform)
	assert.Equal(t, 2.5, cfg.Ads.PixelDensity)
	assert.Equal(t, "unit-7", cfg.Ads.UnitID)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.IsConfigured())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "GORESAN_SOURCE_TOKEN=dotenv-token\nGORESAN_SOURCE_TABLE_ID=99\n")
	t.Cleanup(func() {
		os.Unsetenv("GORESAN_SOURCE_TOKEN")
		os.Unsetenv("GORESAN_SOURCE_TABLE_ID")
	})

	cfg, err := loadConfig(envFile, dir)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-token", cfg.Source.Token)
	assert.Equal(t, "99", cfg.Source.TableID)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "source: [unclosed")

	_, err := loadConfig(filepath.Join(dir, ".env"), dir)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Source.TableID = "321"
	cfg.Source.Token = "secret"
	cfg.Ads.Platform = "ios"
	cfg.Ads.RefreshInterval = 90 * time.Second
	require.NoError(t, saveConfig(cfg, dir))

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := loadConfig(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestClearCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "abc123"), 0755))
	writeFile(t, filepath.Join(dir, "abc123", "goresan.db"), "data")

	require.NoError(t, ClearCache(dir))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// clearing a missing directory is not an error
	assert.NoError(t, ClearCache(dir))
}
