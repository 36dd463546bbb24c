package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/connectivity"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zagreb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  read_timeout: 5s
log:
  level: debug
  format: console
analysis:
  mode: exact
  exhaustive_vertex_limit: 12
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, connectivity.ModeExact, cfg.Analysis.Mode)
	assert.Equal(t, 12, cfg.Analysis.ExhaustiveVertexLimit)

	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvMode, "exhaustive")
	t.Setenv(EnvRateQPS, "2.5")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, connectivity.ModeExhaustive, cfg.Analysis.Mode)
	assert.InDelta(t, 2.5, cfg.Server.RateQPS, 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  mode: sometimes\n"), 0o600))
	_, err = Load(path)
	require.ErrorIs(t, err, connectivity.ErrUnknownMode)

	t.Setenv(EnvMode, "psychic")
	_, err = Load("")
	require.ErrorIs(t, err, connectivity.ErrUnknownMode)
}

func TestApplyEnv_BadQPS(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == EnvRateQPS {
			return "fast", true
		}
		return "", false
	})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty addr":      func(c *Config) { c.Server.Addr = "" },
		"zero timeout":    func(c *Config) { c.Server.ReadTimeout = 0 },
		"zero body":       func(c *Config) { c.Server.MaxBodyBytes = 0 },
		"negative qps":    func(c *Config) { c.Server.RateQPS = -1 },
		"qps no burst":    func(c *Config) { c.Server.RateQPS = 1; c.Server.RateBurst = 0 },
		"qps no idle ttl": func(c *Config) { c.Server.RateQPS = 1; c.Server.RateIdleTTL = 0 },
		"bad level":       func(c *Config) { c.Log.Level = "loud" },
		"bad format":      func(c *Config) { c.Log.Format = "xml" },
		"zero exhaustive": func(c *Config) { c.Analysis.ExhaustiveVertexLimit = 0 },
		"zero max":        func(c *Config) { c.Analysis.MaxVertices = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
