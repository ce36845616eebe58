package models

import "fmt"

var QuoteUnavailableErr = fmt.Errorf("market data is unavailable")
var NoStrikesAvailableErr = fmt.Errorf("option chain has no strikes")
var LegNotFoundErr = fmt.Errorf("no quote found for leg at the selected strike")
var InvalidDateErr = fmt.Errorf("unable to resolve the weekly expiration cadence")
var EmptyUniverseErr = fmt.Errorf("at least one ticker must be configured")
var InvalidThresholdErr = fmt.Errorf("threshold must not be negative")
var InvalidConcurrencyErr = fmt.Errorf("maxConcurrentTickers must be at least 1")
var InvalidSpreadErr = fmt.Errorf("spread legs are inconsistent")

type ErrorDTO struct {
	Msg string `json:"msg"`
}
