package services

import (
	"context"
	"fmt"
	"time"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// MockQuoteSource serves canned prices and chains from memory. Populate it
// before the scan starts; lookups are read-only and safe for concurrent
// workers.
type MockQuoteSource struct {
	prices    map[models.StockSymbol]float64
	priceErrs map[models.StockSymbol]error
	chains    map[string][]models.OptionQuote
	chainErrs map[string]error
}

func NewMockQuoteSource() *MockQuoteSource {
	return &MockQuoteSource{
		prices:    make(map[models.StockSymbol]float64),
		priceErrs: make(map[models.StockSymbol]error),
		chains:    make(map[string][]models.OptionQuote),
		chainErrs: make(map[string]error),
	}
}

func (m *MockQuoteSource) SetPrice(symbol models.StockSymbol, price float64) {
	m.prices[symbol] = price
}

func (m *MockQuoteSource) SetPriceErr(symbol models.StockSymbol, err error) {
	m.priceErrs[symbol] = err
}

func (m *MockQuoteSource) SetChain(symbol models.StockSymbol, expiration time.Time, optionType models.OptionType, chain []models.OptionQuote) {
	m.chains[chainKey(symbol, expiration, optionType)] = chain
}

func (m *MockQuoteSource) SetChainErr(symbol models.StockSymbol, expiration time.Time, optionType models.OptionType, err error) {
	m.chainErrs[chainKey(symbol, expiration, optionType)] = err
}

func (m *MockQuoteSource) GetUnderlyingPrice(ctx context.Context, symbol models.StockSymbol) (float64, error) {
	if err, found := m.priceErrs[symbol]; found {
		return 0, err
	}

	price, found := m.prices[symbol]
	if !found {
		return 0, fmt.Errorf("MockQuoteSource: no price for %s: %w", symbol, models.QuoteUnavailableErr)
	}

	return price, nil
}

func (m *MockQuoteSource) GetOptionChain(ctx context.Context, symbol models.StockSymbol, expiration time.Time, optionType models.OptionType) ([]models.OptionQuote, error) {
	key := chainKey(symbol, expiration, optionType)

	if err, found := m.chainErrs[key]; found {
		return nil, err
	}

	return m.chains[key], nil
}

func chainKey(symbol models.StockSymbol, expiration time.Time, optionType models.OptionType) string {
	return fmt.Sprintf("%s-%s-%s", symbol, expiration.Format("2006-01-02"), optionType)
}
