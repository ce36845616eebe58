package models

import (
	"fmt"
	"time"
)

type PolygonV3Response[T any] struct {
	Results   []T     `json:"results"`
	Status    string  `json:"status"`
	RequestId string  `json:"request_id"`
	NextURL   *string `json:"next_url"`
}

type PolygonContractDetailsDTO struct {
	ContractType      string  `json:"contract_type"`
	ExerciseStyle     string  `json:"exercise_style"`
	ExpirationDate    string  `json:"expiration_date"`
	SharesPerContract int     `json:"shares_per_contract"`
	StrikePrice       float64 `json:"strike_price"`
	Ticker            string  `json:"ticker"`
}

type PolygonDaySnapshotDTO struct {
	Close         float64 `json:"close"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previous_close"`
	Volume        float64 `json:"volume"`
	VWAP          float64 `json:"vwap"`
}

type PolygonGreeksDTO struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

type PolygonLastQuoteDTO struct {
	Ask      float64 `json:"ask"`
	AskSize  float64 `json:"ask_size"`
	Bid      float64 `json:"bid"`
	BidSize  float64 `json:"bid_size"`
	Midpoint float64 `json:"midpoint"`
}

// PolygonOptionSnapshotDTO is one row of the v3 options chain snapshot.
type PolygonOptionSnapshotDTO struct {
	Day               PolygonDaySnapshotDTO     `json:"day"`
	Details           PolygonContractDetailsDTO `json:"details"`
	Greeks            PolygonGreeksDTO          `json:"greeks"`
	ImpliedVolatility float64                   `json:"implied_volatility"`
	LastQuote         PolygonLastQuoteDTO       `json:"last_quote"`
	OpenInterest      float64                   `json:"open_interest"`
}

func (dto *PolygonOptionSnapshotDTO) ToModel(underlying StockSymbol) (OptionQuote, error) {
	expiration, err := time.Parse("2006-01-02", dto.Details.ExpirationDate)
	if err != nil {
		return OptionQuote{}, fmt.Errorf("PolygonOptionSnapshotDTO: ToModel: expiration_date: %w", err)
	}

	optionType := OptionType(dto.Details.ContractType)
	if err := optionType.Validate(); err != nil {
		return OptionQuote{}, fmt.Errorf("PolygonOptionSnapshotDTO: ToModel: %w", err)
	}

	return OptionQuote{
		Symbol:            OptionSymbol(dto.Details.Ticker),
		UnderlyingSymbol:  underlying,
		Strike:            dto.Details.StrikePrice,
		OptionType:        optionType,
		Expiration:        expiration,
		Bid:               dto.LastQuote.Bid,
		Ask:               dto.LastQuote.Ask,
		Volume:            int(dto.Day.Volume),
		OpenInterest:      int(dto.OpenInterest),
		ImpliedVolatility: dto.ImpliedVolatility,
		Theta:             dto.Greeks.Theta,
	}, nil
}
