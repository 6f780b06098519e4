package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
feed:
  locate_allowlist: [1, 2, 3]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.Pool.BlockSize)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, []uint16{1, 2, 3}, cfg.Feed.LocateAllowlist)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	path := writeTempConfig(t, `
logging:
  level: verbose
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
