package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "carcost/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", "")
	t.Setenv("REMOTE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "garage.db"), cfg.DataPath)
	assert.Equal(t, shared.DefaultStorageKey, cfg.StorageKey)
	assert.Equal(t, shared.DefaultVPICBaseURL, cfg.VPICBaseURL)
	assert.False(t, cfg.Remote)
}

func TestLoad_ExplicitDataPath(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("DATA_PATH", "/var/lib/carcost/custom.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/carcost/custom.db", cfg.DataPath)
}

func TestConfig_ServerURL(t *testing.T) {
	c := &Config{ServerAddress: "localhost:8080"}
	assert.Equal(t, "http://localhost:8080", c.ServerURL())

	c.EnableTLS = true
	assert.Equal(t, "https://localhost:8080", c.ServerURL())
}

func TestConfig_validate(t *testing.T) {
	c := &Config{StorageKey: "k", VPICBaseURL: "http://x"}
	assert.NoError(t, c.validate())

	c.Remote = true
	assert.Error(t, c.validate())

	c.ServerAddress = "localhost:8080"
	assert.NoError(t, c.validate())

	c.StorageKey = ""
	assert.Error(t, c.validate())
}
