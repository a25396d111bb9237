package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MVCIPHER_LOG_LEVEL", "")
	t.Setenv("MVCIPHER_ALLOWED_ORIGINS", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1<<20, cfg.Cipher.MaxLineBytes)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "mvcipher.yaml")

	cfg := DefaultConfig()
	cfg.Server.Port = "9090"
	cfg.Logging.Level = "debug"
	cfg.Cipher.MaxLineBytes = 4096
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "mvcipher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvcipher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("MVCIPHER_LOG_LEVEL", "error")
	t.Setenv("MVCIPHER_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = "http"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.MaxUploadBytes = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Cipher.MaxLineBytes = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.AllowedOrigins = []string{"example.com"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}
