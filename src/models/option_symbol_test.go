package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionSymbol(t *testing.T) {
	expiration := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	t.Run("call ticker", func(t *testing.T) {
		symbol, err := NewOptionSymbol("AAPL", expiration, Call, 195)
		assert.NoError(t, err)
		assert.Equal(t, OptionSymbol("O:AAPL240621C00195000"), symbol)
	})

	t.Run("put ticker with fractional strike", func(t *testing.T) {
		symbol, err := NewOptionSymbol("SPY", expiration, Put, 472.5)
		assert.NoError(t, err)
		assert.Equal(t, OptionSymbol("O:SPY240621P00472500"), symbol)
	})

	t.Run("invalid option type", func(t *testing.T) {
		_, err := NewOptionSymbol("AAPL", expiration, "swap", 195)
		assert.Error(t, err)
	})
}

func TestOptionSymbolNoPrefix(t *testing.T) {
	assert.Equal(t, "AAPL240621C00195000", OptionSymbol("O:AAPL240621C00195000").NoPrefix())
	assert.Equal(t, "AAPL240621C00195000", OptionSymbol("AAPL240621C00195000").NoPrefix())
}
