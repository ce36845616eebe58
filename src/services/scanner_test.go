package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

func newScanConfig(universe ...models.StockSymbol) models.ScreeningConfig {
	return models.ScreeningConfig{
		Universe:                universe,
		Contracts:               models.SelectCalls,
		MinOptionVolume:         100,
		MinOptionOpenInterest:   500,
		MinNetCredit:            0.05,
		MinIVPremiumNearOverFar: 0.02,
		RequirePositiveNetTheta: true,
		MaxConcurrentTickers:    1,
	}
}

// stageChains loads one liquid quote per leg at the ATM strike, so the
// spread's fate is decided entirely by nearBid - farAsk.
func stageChains(source *MockQuoteSource, symbol models.StockSymbol, optionType models.OptionType, price, nearBid, farAsk float64, expiries models.ExpiryPair) {
	source.SetPrice(symbol, price)

	source.SetChain(symbol, expiries.Near, optionType, []models.OptionQuote{{
		UnderlyingSymbol:  symbol,
		Strike:            price,
		OptionType:        optionType,
		Expiration:        expiries.Near,
		Bid:               nearBid,
		Ask:               nearBid + 0.10,
		Volume:            500,
		OpenInterest:      1000,
		ImpliedVolatility: 0.35,
		Theta:             -0.08,
	}})

	source.SetChain(symbol, expiries.Far, optionType, []models.OptionQuote{{
		UnderlyingSymbol:  symbol,
		Strike:            price,
		OptionType:        optionType,
		Expiration:        expiries.Far,
		Bid:               farAsk - 0.15,
		Ask:               farAsk,
		Volume:            300,
		OpenInterest:      800,
		ImpliedVolatility: 0.28,
		Theta:             -0.04,
	}})
}

func scanOrder(verdicts models.SpreadVerdicts) []models.StockSymbol {
	tickers := make([]models.StockSymbol, 0, len(verdicts))
	for _, verdict := range verdicts {
		tickers = append(tickers, verdict.Spread.Ticker)
	}

	return tickers
}

func TestRunScan(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 6, 19, 0, 0, 0, 0, time.UTC)

	expiries, err := NextTwoWeeklyExpiries(today)
	assert.NoError(t, err)

	t.Run("mixed outcomes", func(t *testing.T) {
		source := NewMockQuoteSource()
		stageChains(source, "AAPL", models.Call, 100, 3.50, 3.20, expiries)
		stageChains(source, "TSLA", models.Call, 200, 2.10, 3.15, expiries)
		source.SetPriceErr("NVDA", models.QuoteUnavailableErr)

		cfg := newScanConfig("AAPL", "TSLA", "NVDA")

		result, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, result.ScanID)
		assert.Equal(t, expiries, result.Expiries)

		assert.Len(t, result.Verdicts, 1)
		assert.Equal(t, models.StockSymbol("AAPL"), result.Verdicts[0].Spread.Ticker)
		assert.True(t, result.Verdicts[0].Passed)
		assert.Equal(t, 100.0, result.Verdicts[0].UnderlyingPrice)
		assert.InEpsilon(t, 0.30, result.Verdicts[0].NetCredit, 0.001)

		assert.Len(t, result.Rejected, 1)
		assert.Equal(t, models.StockSymbol("TSLA"), result.Rejected[0].Spread.Ticker)
		assert.Equal(t, models.ReasonInsufficientCredit, result.Rejected[0].FailureReason)

		assert.Len(t, result.Skipped, 1)
		assert.Equal(t, models.StockSymbol("NVDA"), result.Skipped[0].Ticker)
		assert.Contains(t, result.Skipped[0].Reason, "market data is unavailable")

		assert.Equal(t, 1, result.Stats.PassedCount)
		assert.Equal(t, 1, result.Stats.RejectedCount)
		assert.Equal(t, 1, result.Stats.SkippedCount)

		assert.False(t, result.FinishedAt.Before(result.StartedAt))
	})

	t.Run("ranking independent of worker order", func(t *testing.T) {
		source := NewMockQuoteSource()
		stageChains(source, "AAPL", models.Call, 100, 3.50, 3.20, expiries)
		stageChains(source, "MSFT", models.Call, 400, 3.70, 3.20, expiries)
		stageChains(source, "NVDA", models.Call, 120, 3.60, 3.20, expiries)
		stageChains(source, "TSLA", models.Call, 200, 3.40, 3.20, expiries)

		cfg := newScanConfig("AAPL", "MSFT", "NVDA", "TSLA")
		cfg.MaxConcurrentTickers = 4

		expected := []models.StockSymbol{"MSFT", "NVDA", "AAPL", "TSLA"}

		first, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)
		assert.Equal(t, expected, scanOrder(first.Verdicts))

		second, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)
		assert.Equal(t, expected, scanOrder(second.Verdicts))
	})

	t.Run("chain failure skips only that ticker", func(t *testing.T) {
		source := NewMockQuoteSource()
		stageChains(source, "AAPL", models.Call, 100, 3.50, 3.20, expiries)
		stageChains(source, "TSLA", models.Call, 200, 3.50, 3.20, expiries)
		source.SetChainErr("TSLA", expiries.Far, models.Call, models.QuoteUnavailableErr)

		cfg := newScanConfig("AAPL", "TSLA")

		result, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)

		assert.Len(t, result.Verdicts, 1)
		assert.Equal(t, models.StockSymbol("AAPL"), result.Verdicts[0].Spread.Ticker)

		assert.Len(t, result.Skipped, 1)
		assert.Equal(t, models.StockSymbol("TSLA"), result.Skipped[0].Ticker)
	})

	t.Run("empty chains are skipped", func(t *testing.T) {
		source := NewMockQuoteSource()
		source.SetPrice("AAPL", 100)

		cfg := newScanConfig("AAPL")

		result, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)

		assert.Len(t, result.Verdicts, 0)
		assert.Len(t, result.Skipped, 1)
		assert.Contains(t, result.Skipped[0].Reason, "option chain has no strikes")
	})

	t.Run("empty universe", func(t *testing.T) {
		result, err := NewScanner(NewMockQuoteSource()).RunScan(ctx, newScanConfig(), today)
		assert.NoError(t, err)

		assert.Len(t, result.Verdicts, 0)
		assert.Len(t, result.Rejected, 0)
		assert.Len(t, result.Skipped, 0)
		assert.Equal(t, 0, result.Stats.PassedCount)
	})

	t.Run("both contract types", func(t *testing.T) {
		source := NewMockQuoteSource()
		stageChains(source, "AAPL", models.Call, 100, 3.50, 3.20, expiries)
		stageChains(source, "AAPL", models.Put, 100, 3.60, 3.20, expiries)

		cfg := newScanConfig("AAPL")
		cfg.Contracts = models.SelectBoth

		result, err := NewScanner(source).RunScan(ctx, cfg, today)
		assert.NoError(t, err)

		assert.Len(t, result.Verdicts, 2)
		assert.Equal(t, models.Put, result.Verdicts[0].Spread.OptionType)
		assert.Equal(t, models.Call, result.Verdicts[1].Spread.OptionType)
	})
}
