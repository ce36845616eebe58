package services

import (
	"fmt"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// BuildCalendarSpread assembles the near/far legs at the given strike. Either
// leg missing from its chain is an expected outcome and surfaces as
// LegNotFoundErr, which the caller treats as a skip.
func BuildCalendarSpread(ticker models.StockSymbol, optionType models.OptionType, strike float64, nearChain, farChain []models.OptionQuote) (models.CalendarSpread, error) {
	nearLeg, err := findQuoteAtStrike(nearChain, optionType, strike)
	if err != nil {
		return models.CalendarSpread{}, fmt.Errorf("BuildCalendarSpread: near leg for %s at %.2f: %w", ticker, strike, err)
	}

	farLeg, err := findQuoteAtStrike(farChain, optionType, strike)
	if err != nil {
		return models.CalendarSpread{}, fmt.Errorf("BuildCalendarSpread: far leg for %s at %.2f: %w", ticker, strike, err)
	}

	spread := models.CalendarSpread{
		Ticker:     ticker,
		OptionType: optionType,
		Strike:     strike,
		NearLeg:    nearLeg,
		FarLeg:     farLeg,
	}

	if err := spread.Validate(); err != nil {
		return models.CalendarSpread{}, fmt.Errorf("BuildCalendarSpread: %w", err)
	}

	return spread, nil
}

func findQuoteAtStrike(chain []models.OptionQuote, optionType models.OptionType, strike float64) (models.OptionQuote, error) {
	for _, quote := range chain {
		if quote.OptionType == optionType && quote.Strike == strike {
			return quote, nil
		}
	}

	return models.OptionQuote{}, models.LegNotFoundErr
}
