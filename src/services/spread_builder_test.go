package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

func newChainQuote(optionType models.OptionType, strike float64, expiration time.Time) models.OptionQuote {
	return models.OptionQuote{
		UnderlyingSymbol: "AAPL",
		Strike:           strike,
		OptionType:       optionType,
		Expiration:       expiration,
		Bid:              1.00,
		Ask:              1.10,
		Volume:           200,
		OpenInterest:     600,
	}
}

func TestBuildCalendarSpread(t *testing.T) {
	nearExpiry := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	farExpiry := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	nearChain := []models.OptionQuote{
		newChainQuote(models.Call, 95, nearExpiry),
		newChainQuote(models.Call, 100, nearExpiry),
		newChainQuote(models.Call, 105, nearExpiry),
	}

	farChain := []models.OptionQuote{
		newChainQuote(models.Call, 100, farExpiry),
		newChainQuote(models.Call, 105, farExpiry),
	}

	t.Run("both legs found", func(t *testing.T) {
		spread, err := BuildCalendarSpread("AAPL", models.Call, 100, nearChain, farChain)
		assert.NoError(t, err)

		assert.Equal(t, models.StockSymbol("AAPL"), spread.Ticker)
		assert.Equal(t, 100.0, spread.Strike)
		assert.Equal(t, nearExpiry, spread.NearLeg.Expiration)
		assert.Equal(t, farExpiry, spread.FarLeg.Expiration)
	})

	t.Run("near leg missing", func(t *testing.T) {
		_, err := BuildCalendarSpread("AAPL", models.Call, 110, nearChain, farChain)
		assert.ErrorIs(t, err, models.LegNotFoundErr)
	})

	t.Run("far leg missing", func(t *testing.T) {
		_, err := BuildCalendarSpread("AAPL", models.Call, 95, nearChain, farChain)
		assert.ErrorIs(t, err, models.LegNotFoundErr)
	})

	t.Run("option type must match", func(t *testing.T) {
		_, err := BuildCalendarSpread("AAPL", models.Put, 100, nearChain, farChain)
		assert.ErrorIs(t, err, models.LegNotFoundErr)
	})
}
