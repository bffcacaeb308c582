package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/lectern.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "./tmp", cfg.DataDirectory)
	assert.Equal(t, filepath.Join("./tmp", "lectern.sqlite"), cfg.DatabaseFilePath)
	assert.Equal(t, 100*time.Millisecond, cfg.DownloadDelay)
	assert.Equal(t, 2, cfg.WorkerProcesses)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNew_WithEnvVar(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/lectern.yaml")
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("DOWNLOAD_DELAY", "250ms")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DatabaseFilePath)
	assert.Equal(t, 250*time.Millisecond, cfg.DownloadDelay)
	assert.Equal(t, 9000, cfg.ServerPort)
}

func TestNew_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lectern.yaml")

	configContent := `
data_directory: /data/lectern
content_base_url: https://example.com/bibles
database_debug: true
server_port: 8080
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/lectern", cfg.DataDirectory)
	assert.Equal(t, "https://example.com/bibles", cfg.ContentBaseURL)
	assert.True(t, cfg.DatabaseDebug)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, filepath.Join("/data/lectern", "lectern.sqlite"), cfg.DatabaseFilePath)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lectern.yaml")

	err := os.WriteFile(configPath, []byte("server_port: 8080\n"), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
}

func TestNew_RequiredFieldMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/lectern.yaml")
	t.Setenv("CONTENT_BASE_URL", "")

	cfg, err := New()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config")
	assert.Contains(t, err.Error(), "CONTENT_BASE_URL (content_base_url)")
}
