package models

import "fmt"

// CalendarSpread pairs a short near-dated leg with a long far-dated leg of the
// same type at the same strike.
type CalendarSpread struct {
	Ticker     StockSymbol `json:"ticker"`
	OptionType OptionType  `json:"option_type"`
	Strike     float64     `json:"strike"`
	NearLeg    OptionQuote `json:"near_leg"`
	FarLeg     OptionQuote `json:"far_leg"`
}

func (s CalendarSpread) Validate() error {
	if err := s.OptionType.Validate(); err != nil {
		return fmt.Errorf("CalendarSpread: Validate: %w", err)
	}

	if s.NearLeg.Strike != s.Strike || s.FarLeg.Strike != s.Strike {
		return fmt.Errorf("CalendarSpread: Validate: leg strikes %v / %v do not match spread strike %v: %w", s.NearLeg.Strike, s.FarLeg.Strike, s.Strike, InvalidSpreadErr)
	}

	if s.NearLeg.OptionType != s.OptionType || s.FarLeg.OptionType != s.OptionType {
		return fmt.Errorf("CalendarSpread: Validate: leg types %s / %s do not match spread type %s: %w", s.NearLeg.OptionType, s.FarLeg.OptionType, s.OptionType, InvalidSpreadErr)
	}

	if !s.NearLeg.Expiration.Before(s.FarLeg.Expiration) {
		return fmt.Errorf("CalendarSpread: Validate: near leg expires %s, on or after far leg %s: %w", s.NearLeg.ExpirationDate(), s.FarLeg.ExpirationDate(), InvalidSpreadErr)
	}

	return nil
}

// NetCredit is the premium collected per share when the position is opened at
// executable prices: sell the near leg at the bid, buy the far leg at the ask.
func (s CalendarSpread) NetCredit() float64 {
	return s.NearLeg.Bid - s.FarLeg.Ask
}

// IVDifferential measures how much richer the near leg's implied volatility is
// than the far leg's.
func (s CalendarSpread) IVDifferential() float64 {
	return s.NearLeg.ImpliedVolatility - s.FarLeg.ImpliedVolatility
}

// NetTheta is the position's daily time decay. The near leg is short, so its
// theta flips sign; long options carry negative theta.
func (s CalendarSpread) NetTheta() float64 {
	return -s.NearLeg.Theta - s.FarLeg.Theta
}
