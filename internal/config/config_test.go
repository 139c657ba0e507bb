package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgriPanel/AP-Backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("CORS_ORIGINS_FILE", "")

	cfg := config.LoadFromEnv()
	assert.Equal(t, "5050", cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Empty(t, cfg.OriginsFile)
}

func TestLoadOriginsDefaultsWithoutFile(t *testing.T) {
	cfg := config.Config{}
	origins, err := cfg.LoadOrigins()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOrigins, origins)
}

func TestLoadOriginsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "origins.yaml")
	content := "origins:\n  - https://admin.example.com\n  - http://localhost:9000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := config.Config{OriginsFile: path}
	origins, err := cfg.LoadOrigins()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://admin.example.com", "http://localhost:9000"}, origins)
}

func TestLoadOriginsErrors(t *testing.T) {
	cfg := config.Config{OriginsFile: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := cfg.LoadOrigins()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origins: []\n"), 0o600))
	cfg = config.Config{OriginsFile: path}
	_, err = cfg.LoadOrigins()
	assert.Error(t, err)
}
