package services

import (
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// ComputeSummaryStats summarizes the passing set. Counts always populate;
// aggregate metrics stay zero when nothing passed.
func ComputeSummaryStats(passed, rejected models.SpreadVerdicts, skipped []models.SkippedTicker) models.ScanSummaryStats {
	summary := models.ScanSummaryStats{
		PassedCount:   len(passed),
		RejectedCount: len(rejected),
		SkippedCount:  len(skipped),
	}

	if len(passed) == 0 {
		return summary
	}

	credits := passed.NetCredits()

	mean, err := stats.Mean(credits)
	if err != nil {
		log.Warnf("ComputeSummaryStats: failed to calculate mean net credit: %v", err)
		return summary
	}

	median, err := stats.Median(credits)
	if err != nil {
		log.Warnf("ComputeSummaryStats: failed to calculate median net credit: %v", err)
		return summary
	}

	max, err := stats.Max(credits)
	if err != nil {
		log.Warnf("ComputeSummaryStats: failed to calculate max net credit: %v", err)
		return summary
	}

	sd, err := stats.StandardDeviation(credits)
	if err != nil {
		log.Warnf("ComputeSummaryStats: failed to calculate the standard deviation: %v", err)
		return summary
	}

	meanIVDiff, err := stats.Mean(passed.IVDifferentials())
	if err != nil {
		log.Warnf("ComputeSummaryStats: failed to calculate mean iv differential: %v", err)
		return summary
	}

	summary.MeanNetCredit = mean
	summary.MedianNetCredit = median
	summary.MaxNetCredit = max
	summary.StdDevNetCredit = sd
	summary.MeanIVDifferential = meanIVDiff

	return summary
}
