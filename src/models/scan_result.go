package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanResult is everything one scan produced: the ranked passing spreads, the
// rejected candidates with their failure reasons, and the tickers that could
// not be evaluated at all.
type ScanResult struct {
	ScanID     uuid.UUID        `json:"scan_id"`
	Expiries   ExpiryPair       `json:"expiries"`
	Verdicts   SpreadVerdicts   `json:"verdicts"`
	Rejected   SpreadVerdicts   `json:"rejected"`
	Skipped    []SkippedTicker  `json:"skipped"`
	Stats      ScanSummaryStats `json:"stats"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}
