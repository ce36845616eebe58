package models

import (
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
)

// ScanRequestDTO carries the per-request overrides accepted by the HTTP API.
// Every field is optional; absent fields fall back to the server's config.
type ScanRequestDTO struct {
	Tickers                 []string `schema:"tickers" json:"tickers"`
	Contracts               string   `schema:"contracts" json:"contracts"`
	MinOptionVolume         *int     `schema:"min_option_volume" json:"min_option_volume"`
	MinOptionOpenInterest   *int     `schema:"min_option_open_interest" json:"min_option_open_interest"`
	MinNetCredit            *float64 `schema:"min_net_credit" json:"min_net_credit"`
	MinIVPremiumNearOverFar *float64 `schema:"min_iv_premium_near_over_far" json:"min_iv_premium_near_over_far"`
	RequirePositiveNetTheta *bool    `schema:"require_positive_net_theta" json:"require_positive_net_theta"`
}

func (dto *ScanRequestDTO) ParseHTTPRequest(r *http.Request) error {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(dto, r.URL.Query()); err != nil {
		return fmt.Errorf("ScanRequestDTO: ParseHTTPRequest: failed to decode query: %w", err)
	}

	return nil
}

func (dto *ScanRequestDTO) Validate(r *http.Request) error {
	if dto.Contracts != "" {
		if err := ContractSelection(dto.Contracts).Validate(); err != nil {
			return fmt.Errorf("ScanRequestDTO: Validate: %w", err)
		}
	}

	if dto.MinOptionVolume != nil && *dto.MinOptionVolume < 0 {
		return fmt.Errorf("ScanRequestDTO: Validate: min_option_volume is %d: %w", *dto.MinOptionVolume, InvalidThresholdErr)
	}

	if dto.MinOptionOpenInterest != nil && *dto.MinOptionOpenInterest < 0 {
		return fmt.Errorf("ScanRequestDTO: Validate: min_option_open_interest is %d: %w", *dto.MinOptionOpenInterest, InvalidThresholdErr)
	}

	return nil
}

// ApplyTo merges the request's overrides onto a copy of the base config.
func (dto *ScanRequestDTO) ApplyTo(base ScreeningConfig) (ScreeningConfig, error) {
	cfg := base

	if len(dto.Tickers) > 0 {
		universe := make([]StockSymbol, 0, len(dto.Tickers))
		for _, ticker := range dto.Tickers {
			universe = append(universe, NewStockSymbol(ticker))
		}

		cfg.Universe = universe
	}

	if dto.Contracts != "" {
		cfg.Contracts = ContractSelection(dto.Contracts)
	}

	if dto.MinOptionVolume != nil {
		cfg.MinOptionVolume = *dto.MinOptionVolume
	}

	if dto.MinOptionOpenInterest != nil {
		cfg.MinOptionOpenInterest = *dto.MinOptionOpenInterest
	}

	if dto.MinNetCredit != nil {
		cfg.MinNetCredit = *dto.MinNetCredit
	}

	if dto.MinIVPremiumNearOverFar != nil {
		cfg.MinIVPremiumNearOverFar = *dto.MinIVPremiumNearOverFar
	}

	if dto.RequirePositiveNetTheta != nil {
		cfg.RequirePositiveNetTheta = *dto.RequirePositiveNetTheta
	}

	if err := cfg.Validate(); err != nil {
		return ScreeningConfig{}, fmt.Errorf("ScanRequestDTO: ApplyTo: %w", err)
	}

	return cfg, nil
}
