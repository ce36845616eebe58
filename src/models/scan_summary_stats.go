package models

// ScanSummaryStats aggregates the economics of the passing spreads.
type ScanSummaryStats struct {
	PassedCount        int     `json:"passed_count"`
	RejectedCount      int     `json:"rejected_count"`
	SkippedCount       int     `json:"skipped_count"`
	MeanNetCredit      float64 `json:"mean_net_credit"`
	MedianNetCredit    float64 `json:"median_net_credit"`
	MaxNetCredit       float64 `json:"max_net_credit"`
	StdDevNetCredit    float64 `json:"std_dev_net_credit"`
	MeanIVDifferential float64 `json:"mean_iv_differential"`
}
