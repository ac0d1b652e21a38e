package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout())
	require.Equal(t, 500000.0, cfg.Deposit.Floor)
	require.Equal(t, 0.10, cfg.Deposit.Rate)
	require.Equal(t, 10, cfg.Listing.PageSize)
	require.Equal(t, 1000, cfg.Listing.MaxBidScan)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	raw := []byte(`
api:
  base_url: https://api.pin-cu.vn
  timeout_seconds: 10
deposit:
  floor: 200000
  rate: 0.05
listing:
  page_size: 25
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.pin-cu.vn", cfg.API.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Timeout())
	require.Equal(t, 25, cfg.Listing.PageSize)

	policy := cfg.DepositPolicy()
	require.Equal(t, 200000.0, policy.Floor)
	require.Equal(t, 0.05, policy.Rate)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MARKET_API_URL", "https://staging.pin-cu.vn")
	t.Setenv("DEPOSIT_FLOOR", "750000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://staging.pin-cu.vn", cfg.API.BaseURL)
	require.Equal(t, 750000.0, cfg.Deposit.Floor)
}

func TestLoad_ServerAddr(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())

	t.Setenv("PORT", "9090")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("MARKET_API_TIMEOUT_SECONDS", "soon")

	_, err := Load("")
	require.Error(t, err)
}
