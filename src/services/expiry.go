package services

import (
	"fmt"
	"time"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// DeriveNextFriday returns the first Friday strictly after t. A scan run on a
// Friday targets the following week's contract, not one expiring the same day.
func DeriveNextFriday(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)

	// find the next friday
	for {
		if t.Weekday() == time.Friday {
			break
		}

		t = t.AddDate(0, 0, 1)
	}

	return t
}

// NextTwoWeeklyExpiries derives the near/far expiration pair for a calendar
// spread: the next weekly Friday and the Friday seven days after it.
func NextTwoWeeklyExpiries(today time.Time) (models.ExpiryPair, error) {
	near := DeriveNextFriday(today)
	far := near.AddDate(0, 0, 7)

	pair := models.ExpiryPair{Near: near, Far: far}
	if err := pair.Validate(); err != nil {
		return models.ExpiryPair{}, fmt.Errorf("NextTwoWeeklyExpiries: %w", err)
	}

	return pair, nil
}
