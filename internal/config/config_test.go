package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stepline/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
fps: 60
speed: 2.5
http:
  addr: ":8080"
events:
  redis:
    addr: "localhost:6379"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost:6379", cfg.Events.Redis.Addr)
	assert.Equal(t, "stepline:events", cfg.Events.Redis.Channel, "unset keys keep defaults")
	assert.Equal(t, 12, cfg.StepInterval)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "fps: 0\nspeed: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
	assert.Contains(t, err.Error(), "speed")

	_, err = config.Load(writeFile(t, "fps: [1"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
