package models

import (
	"fmt"
	"time"
)

// ExpiryPair holds the two consecutive weekly expirations a calendar spread
// trades across: sell the near leg, buy the far leg.
type ExpiryPair struct {
	Near time.Time `json:"near"`
	Far  time.Time `json:"far"`
}

func (p ExpiryPair) Validate() error {
	if p.Near.Weekday() != time.Friday || p.Far.Weekday() != time.Friday {
		return fmt.Errorf("ExpiryPair: Validate: expirations must fall on a Friday: %w", InvalidDateErr)
	}

	if !p.Near.Before(p.Far) {
		return fmt.Errorf("ExpiryPair: Validate: near expiration %s must precede far expiration %s: %w", p.NearDate(), p.FarDate(), InvalidDateErr)
	}

	return nil
}

func (p ExpiryPair) NearDate() string {
	return p.Near.Format("2006-01-02")
}

func (p ExpiryPair) FarDate() string {
	return p.Far.Format("2006-01-02")
}
