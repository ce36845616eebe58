package services

import (
	"sort"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// RankVerdicts orders spreads by net credit, richest first. Ties break by
// ticker then option type so the ordering is total and runs are repeatable.
func RankVerdicts(verdicts models.SpreadVerdicts) models.SpreadVerdicts {
	ranked := make(models.SpreadVerdicts, len(verdicts))
	copy(ranked, verdicts)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].NetCredit != ranked[j].NetCredit {
			return ranked[i].NetCredit > ranked[j].NetCredit
		}

		if ranked[i].Spread.Ticker != ranked[j].Spread.Ticker {
			return ranked[i].Spread.Ticker.String() < ranked[j].Spread.Ticker.String()
		}

		return ranked[i].Spread.OptionType < ranked[j].Spread.OptionType
	})

	return ranked
}

// SortSkipped orders skip records by ticker then option type.
func SortSkipped(skipped []models.SkippedTicker) {
	sort.Slice(skipped, func(i, j int) bool {
		if skipped[i].Ticker != skipped[j].Ticker {
			return skipped[i].Ticker.String() < skipped[j].Ticker.String()
		}

		return skipped[i].OptionType < skipped[j].OptionType
	})
}
