package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreeningConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewScreeningConfig().Validate())
	})

	t.Run("empty universe", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.Universe = nil

		assert.ErrorIs(t, cfg.Validate(), EmptyUniverseErr)
	})

	t.Run("blank ticker", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.Universe = []StockSymbol{"AAPL", ""}

		assert.ErrorIs(t, cfg.Validate(), EmptyUniverseErr)
	})

	t.Run("unknown contract selection", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.Contracts = "strangles"

		assert.Error(t, cfg.Validate())
	})

	t.Run("negative volume threshold", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.MinOptionVolume = -1

		assert.ErrorIs(t, cfg.Validate(), InvalidThresholdErr)
	})

	t.Run("negative open interest threshold", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.MinOptionOpenInterest = -10

		assert.ErrorIs(t, cfg.Validate(), InvalidThresholdErr)
	})

	t.Run("zero concurrency", func(t *testing.T) {
		cfg := NewScreeningConfig()
		cfg.MaxConcurrentTickers = 0

		assert.ErrorIs(t, cfg.Validate(), InvalidConcurrencyErr)
	})
}

func TestNewScreeningConfig(t *testing.T) {
	cfg := NewScreeningConfig()

	assert.Equal(t, SelectCalls, cfg.Contracts)
	assert.Equal(t, 100, cfg.MinOptionVolume)
	assert.Equal(t, 500, cfg.MinOptionOpenInterest)
	assert.True(t, cfg.RequirePositiveNetTheta)
	assert.Equal(t, 1, cfg.MaxConcurrentTickers)
	assert.Contains(t, cfg.Universe, StockSymbol("AAPL"))
}
