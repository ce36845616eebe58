package models

import "fmt"

// ScreeningConfig is the full set of knobs for one scan. Validate it once at
// startup; the scan itself treats the config as read-only.
type ScreeningConfig struct {
	Universe                []StockSymbol     `json:"universe"`
	Contracts               ContractSelection `json:"contracts"`
	MinOptionVolume         int               `json:"min_option_volume"`
	MinOptionOpenInterest   int               `json:"min_option_open_interest"`
	MinNetCredit            float64           `json:"min_net_credit"`
	MinIVPremiumNearOverFar float64           `json:"min_iv_premium_near_over_far"`
	RequirePositiveNetTheta bool              `json:"require_positive_net_theta"`
	MaxConcurrentTickers    int               `json:"max_concurrent_tickers"`
}

func (c ScreeningConfig) Validate() error {
	if len(c.Universe) == 0 {
		return fmt.Errorf("ScreeningConfig: Validate: %w", EmptyUniverseErr)
	}

	for _, symbol := range c.Universe {
		if symbol.String() == "" {
			return fmt.Errorf("ScreeningConfig: Validate: universe contains an empty ticker: %w", EmptyUniverseErr)
		}
	}

	if err := c.Contracts.Validate(); err != nil {
		return fmt.Errorf("ScreeningConfig: Validate: %w", err)
	}

	if c.MinOptionVolume < 0 {
		return fmt.Errorf("ScreeningConfig: Validate: minOptionVolume is %d: %w", c.MinOptionVolume, InvalidThresholdErr)
	}

	if c.MinOptionOpenInterest < 0 {
		return fmt.Errorf("ScreeningConfig: Validate: minOptionOpenInterest is %d: %w", c.MinOptionOpenInterest, InvalidThresholdErr)
	}

	if c.MaxConcurrentTickers < 1 {
		return fmt.Errorf("ScreeningConfig: Validate: %w", InvalidConcurrencyErr)
	}

	return nil
}

// NewScreeningConfig returns the default scan configuration.
func NewScreeningConfig() ScreeningConfig {
	return ScreeningConfig{
		Universe:                []StockSymbol{"AAPL", "TSLA", "NVDA", "QQQ", "SPY", "AMD"},
		Contracts:               SelectCalls,
		MinOptionVolume:         100,
		MinOptionOpenInterest:   500,
		MinNetCredit:            0,
		MinIVPremiumNearOverFar: 0,
		RequirePositiveNetTheta: true,
		MaxConcurrentTickers:    1,
	}
}
