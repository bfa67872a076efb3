package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests loading with nothing but defaults
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoad_File tests reading a TOML config file
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
listen_addr = "0.0.0.0:9090"
fee_bps = 50
canonical_pairs = true
principals = ["alice", "bob"]
shutdown_timeout = "30s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	require.Equal(t, uint32(50), cfg.FeeBps)
	require.True(t, cfg.CanonicalPairs)
	require.Equal(t, []string{"alice", "bob"}, cfg.Principals)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

// TestLoad_Env tests the PISWAP_ environment prefix
func TestLoad_Env(t *testing.T) {
	t.Setenv("PISWAP_LISTEN_ADDR", "0.0.0.0:7070")
	t.Setenv("PISWAP_LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:7070", cfg.ListenAddr)
	require.Equal(t, "debug", cfg.LogLevel)
}

// TestLoad_FlagsOverride tests that changed flags win over the file
func TestLoad_FlagsOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Set("log-level", "debug"))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
}

// TestLoad_UnchangedFlagKeepsFile tests that flag defaults do not
// shadow config file values.
func TestLoad_UnchangedFlagKeepsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}

// TestValidate tests the required-field checks
func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Home = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ListenAddr = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FeeBps = 10001
	require.Error(t, cfg.Validate())
}

// TestDBDir tests the data directory layout
func TestDBDir(t *testing.T) {
	cfg := Default()
	cfg.Home = "/var/lib/piswap"
	require.Equal(t, filepath.Join("/var/lib/piswap", "data"), cfg.DBDir())
}

// TestLoad_MissingFile tests the error for an unreadable config path
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml", nil)
	require.Error(t, err)
}
