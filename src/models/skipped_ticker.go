package models

// SkippedTicker records a ticker the scan could not evaluate and why. Skips
// are reported, never fatal.
type SkippedTicker struct {
	Ticker     StockSymbol `json:"ticker"`
	OptionType OptionType  `json:"option_type"`
	Reason     string      `json:"reason"`
}
