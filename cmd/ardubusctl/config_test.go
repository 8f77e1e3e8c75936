package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", false)
	require.NoError(t, err)
	require.Equal(t, 115200, cfg.Baud)
	require.Empty(t, cfg.Port)
}

func TestLoadConfigMissingDefaultPath(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), cfg)
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: /dev/ttyUSB0\nread_delay_ms: 10\n"), 0o644))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyUSB0", cfg.Port)
	require.Equal(t, 10, cfg.ReadDelayMs)
	// keys absent from the file keep their defaults
	require.Equal(t, 115200, cfg.Baud)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))

	_, err := loadConfig(path, true)
	require.Error(t, err)
}

func TestParseByteArg(t *testing.T) {
	b, err := parseByteArg("device address", "0x14")
	require.NoError(t, err)
	require.Equal(t, byte(0x14), b)

	b, err = parseByteArg("register", "16")
	require.NoError(t, err)
	require.Equal(t, byte(16), b)

	_, err = parseByteArg("device address", "256")
	require.Error(t, err)
	_, err = parseByteArg("device address", "xyz")
	require.Error(t, err)
}
