package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 90.0, cfg.Reports.NearGoalPercent)
	assert.Equal(t, 1000.0, cfg.Reports.LargeDonationAmount)
	assert.Equal(t, 5, cfg.Reports.TopProjectCount)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
reports:
  near_goal_percent: 80
  top_project_count: 10
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 80.0, cfg.Reports.NearGoalPercent)
	assert.Equal(t, 10, cfg.Reports.TopProjectCount)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000.0, cfg.Reports.LargeDonationAmount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
