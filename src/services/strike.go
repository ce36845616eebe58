package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// SelectATMStrike picks the strike closest to the underlying price. An exact
// tie between two strikes resolves to the lower one, so results are stable
// across runs.
func SelectATMStrike(underlyingPrice float64, strikes []float64) (float64, error) {
	if len(strikes) == 0 {
		return 0, fmt.Errorf("SelectATMStrike: %w", models.NoStrikesAvailableErr)
	}

	atmStrike := strikes[0]
	minDistance := math.Abs(strikes[0] - underlyingPrice)

	for _, strike := range strikes[1:] {
		distance := math.Abs(strike - underlyingPrice)

		if distance < minDistance {
			minDistance = distance
			atmStrike = strike
			continue
		}

		if distance == minDistance && strike < atmStrike {
			atmStrike = strike
		}
	}

	return atmStrike, nil
}

// CollectStrikes returns the distinct strikes seen across both legs' chains,
// sorted ascending.
func CollectStrikes(chains ...[]models.OptionQuote) []float64 {
	seen := make(map[float64]bool)
	var strikes []float64

	for _, chain := range chains {
		for _, quote := range chain {
			if seen[quote.Strike] {
				continue
			}

			seen[quote.Strike] = true
			strikes = append(strikes, quote.Strike)
		}
	}

	sort.Float64s(strikes)

	return strikes
}
