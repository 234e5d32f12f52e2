package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

const sample = `
report_dir: out
pricing:
  expiry_policy: intrinsic
  strict_selectors: true
contracts:
  - id: c1
    option_type: Call Option
    spot: 100
    strike: 100
    days_to_maturity: 365
    risk_free_rate: 0.05
    volatility: 0.2
  - id: p1
    option_type: Put Option
    spot: 50
    strike: 60
    days_to_maturity: 182.5
    risk_free_rate: 0.01
    volatility: 0.3
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, "portfolio.yaml", sample))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.ReportDir)
	assert.True(t, cfg.Pricing.StrictSelectors)
	policy, err := cfg.Pricing.Policy()
	require.NoError(t, err)
	assert.Equal(t, pricing.ExpiryIntrinsic, policy)

	require.Len(t, cfg.Contracts, 2)
	assert.Equal(t, "Put Option", cfg.Contracts[1].OptionType)
	assert.Equal(t, 182.5, cfg.Contracts[1].DaysToMaturity)
	assert.Equal(t, 0.3, cfg.Contracts[1].Volatility)

	// defaults
	assert.Equal(t, 0, cfg.Pricing.Workers)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, 100, cfg.Logger.MaxSize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OPTION_PRICER_PRICING_WORKERS", "8")
	t.Setenv("OPTION_PRICER_LOGGER_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, "portfolio.yaml", sample))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Pricing.Workers)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadJSON(t *testing.T) {
	body := `{"contracts":[{"id":"c1","option_type":"Call Option","spot":10,"strike":9,"days_to_maturity":30,"risk_free_rate":0.02,"volatility":0.4}]}`
	cfg, err := Load(writeConfig(t, "portfolio.json", body))
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.ReportDir)
	require.Len(t, cfg.Contracts, 1)
	assert.Equal(t, 9.0, cfg.Contracts[0].Strike)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")

	tests := map[string]string{
		"bad policy":   "pricing:\n  expiry_policy: never\n",
		"bad workers":  "pricing:\n  workers: -1\n",
		"bad level":    "logger:\n  level: loud\n",
		"missing id":   "contracts:\n  - option_type: Call Option\n",
		"duplicate id": "contracts:\n  - id: a\n  - id: a\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "c.yaml", body))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
