package models

import "time"

// OptionQuote is a point-in-time snapshot of a single option contract. Quotes
// are immutable once fetched; a scan never mutates them.
type OptionQuote struct {
	Symbol            OptionSymbol `json:"symbol"`
	UnderlyingSymbol  StockSymbol  `json:"underlying_symbol"`
	Strike            float64      `json:"strike"`
	OptionType        OptionType   `json:"option_type"`
	Expiration        time.Time    `json:"expiration"`
	Bid               float64      `json:"bid"`
	Ask               float64      `json:"ask"`
	Volume            int          `json:"volume"`
	OpenInterest      int          `json:"open_interest"`
	ImpliedVolatility float64      `json:"implied_volatility"`
	Theta             float64      `json:"theta"`
}

func (q OptionQuote) IsLiquid(minVolume, minOpenInterest int) bool {
	return q.Volume >= minVolume && q.OpenInterest >= minOpenInterest
}

func (q OptionQuote) ExpirationDate() string {
	return q.Expiration.Format("2006-01-02")
}
