package services

import (
	"context"
	"time"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// QuoteSource is the market data boundary the scanner depends on. Transport
// failures wrap models.QuoteUnavailableErr; an empty chain is a valid result,
// not an error.
type QuoteSource interface {
	GetUnderlyingPrice(ctx context.Context, symbol models.StockSymbol) (float64, error)
	GetOptionChain(ctx context.Context, symbol models.StockSymbol, expiration time.Time, optionType models.OptionType) ([]models.OptionQuote, error)
}
