package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestScreenerConfigYAML(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		raw := []byte("minNetCredit: 0.10\n")

		var fileCfg ScreenerConfigYAML
		assert.NoError(t, yaml.Unmarshal(raw, &fileCfg))

		cfg, err := fileCfg.ToScreeningConfig()
		assert.NoError(t, err)

		assert.Equal(t, 0.10, cfg.MinNetCredit)
		assert.Equal(t, SelectCalls, cfg.Contracts)
		assert.Equal(t, 100, cfg.MinOptionVolume)
		assert.True(t, cfg.RequirePositiveNetTheta)
	})

	t.Run("full file overrides defaults", func(t *testing.T) {
		raw := []byte(`tickers:
  - aapl
  - tsla
contracts: both
minOptionVolume: 250
minOptionOpenInterest: 750
minNetCredit: 0.15
minIvPremiumNearOverFar: 0.05
requirePositiveNetTheta: false
maxConcurrentTickers: 4
`)

		var fileCfg ScreenerConfigYAML
		assert.NoError(t, yaml.Unmarshal(raw, &fileCfg))

		cfg, err := fileCfg.ToScreeningConfig()
		assert.NoError(t, err)

		assert.Equal(t, []StockSymbol{"AAPL", "TSLA"}, cfg.Universe)
		assert.Equal(t, SelectBoth, cfg.Contracts)
		assert.Equal(t, 250, cfg.MinOptionVolume)
		assert.Equal(t, 750, cfg.MinOptionOpenInterest)
		assert.Equal(t, 0.15, cfg.MinNetCredit)
		assert.Equal(t, 0.05, cfg.MinIVPremiumNearOverFar)
		assert.False(t, cfg.RequirePositiveNetTheta)
		assert.Equal(t, 4, cfg.MaxConcurrentTickers)
	})

	t.Run("invalid contracts value", func(t *testing.T) {
		fileCfg := ScreenerConfigYAML{Contracts: "butterflies"}

		_, err := fileCfg.ToScreeningConfig()
		assert.Error(t, err)
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		zero := 0
		fileCfg := ScreenerConfigYAML{MaxConcurrentTickers: &zero}

		_, err := fileCfg.ToScreeningConfig()
		assert.ErrorIs(t, err, InvalidConcurrencyErr)
	})
}
