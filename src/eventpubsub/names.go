package eventpubsub

const (
	ScanStartedEvent       = "ScanStartedEvent"
	TickerScanStartedEvent = "TickerScanStartedEvent"
	TickerSkippedEvent     = "TickerSkippedEvent"
	SpreadAcceptedEvent    = "SpreadAcceptedEvent"
	SpreadRejectedEvent    = "SpreadRejectedEvent"
	ScanCompletedEvent     = "ScanCompletedEvent"
)
