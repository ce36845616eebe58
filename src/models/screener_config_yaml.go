package models

import "fmt"

type ScreenerConfigYAML struct {
	Tickers                 []string `yaml:"tickers"`
	Contracts               string   `yaml:"contracts"`
	MinOptionVolume         *int     `yaml:"minOptionVolume,omitempty"`
	MinOptionOpenInterest   *int     `yaml:"minOptionOpenInterest,omitempty"`
	MinNetCredit            *float64 `yaml:"minNetCredit,omitempty"`
	MinIVPremiumNearOverFar *float64 `yaml:"minIvPremiumNearOverFar,omitempty"`
	RequirePositiveNetTheta *bool    `yaml:"requirePositiveNetTheta,omitempty"`
	MaxConcurrentTickers    *int     `yaml:"maxConcurrentTickers,omitempty"`
}

// ToScreeningConfig overlays the values present in the file onto the default
// configuration. Absent keys keep their defaults.
func (y *ScreenerConfigYAML) ToScreeningConfig() (ScreeningConfig, error) {
	cfg := NewScreeningConfig()

	if len(y.Tickers) > 0 {
		universe := make([]StockSymbol, 0, len(y.Tickers))
		for _, ticker := range y.Tickers {
			universe = append(universe, NewStockSymbol(ticker))
		}

		cfg.Universe = universe
	}

	if y.Contracts != "" {
		cfg.Contracts = ContractSelection(y.Contracts)
	}

	if y.MinOptionVolume != nil {
		cfg.MinOptionVolume = *y.MinOptionVolume
	}

	if y.MinOptionOpenInterest != nil {
		cfg.MinOptionOpenInterest = *y.MinOptionOpenInterest
	}

	if y.MinNetCredit != nil {
		cfg.MinNetCredit = *y.MinNetCredit
	}

	if y.MinIVPremiumNearOverFar != nil {
		cfg.MinIVPremiumNearOverFar = *y.MinIVPremiumNearOverFar
	}

	if y.RequirePositiveNetTheta != nil {
		cfg.RequirePositiveNetTheta = *y.RequirePositiveNetTheta
	}

	if y.MaxConcurrentTickers != nil {
		cfg.MaxConcurrentTickers = *y.MaxConcurrentTickers
	}

	if err := cfg.Validate(); err != nil {
		return ScreeningConfig{}, fmt.Errorf("ScreenerConfigYAML: ToScreeningConfig: %w", err)
	}

	return cfg, nil
}
