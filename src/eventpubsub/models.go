package eventpubsub

import (
	"github.com/google/uuid"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

type ScanStarted struct {
	ScanID   uuid.UUID
	Universe []models.StockSymbol
	Expiries models.ExpiryPair
}

type TickerScanStarted struct {
	Ticker     models.StockSymbol
	OptionType models.OptionType
}

type TickerSkipped struct {
	ScanID     uuid.UUID
	Ticker     models.StockSymbol
	OptionType models.OptionType
	Reason     string
}

type ScanCompleted struct {
	ScanID        uuid.UUID
	PassedCount   int
	RejectedCount int
	SkippedCount  int
}
