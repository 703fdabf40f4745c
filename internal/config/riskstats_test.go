package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "risk_free_rate: 0.05\nround_decimals: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.RiskFreeRate)
	assert.Equal(t, 2, cfg.RoundDecimals)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "risk_free_rate: 0.07\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.07, cfg.RiskFreeRate)
	assert.Equal(t, Default().RoundDecimals, cfg.RoundDecimals)
}

func TestLoad_InvalidDecimals(t *testing.T) {
	path := writeConfig(t, "round_decimals: 40\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round_decimals must be between 0 and 15")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "risk_free_rate: [oops\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
