package services

import (
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// EvaluateSpread runs the filter pipeline over one candidate. Checks run in a
// fixed order: liquidity, net credit, IV differential, net theta. The first
// failing check names the verdict, but every metric is computed regardless so
// rejected spreads stay inspectable.
func EvaluateSpread(cfg models.ScreeningConfig, spread models.CalendarSpread) models.SpreadVerdict {
	verdict := models.SpreadVerdict{
		Spread:         spread,
		NetCredit:      spread.NetCredit(),
		IVDifferential: spread.IVDifferential(),
		NetTheta:       spread.NetTheta(),
		Passed:         true,
	}

	if !spread.NearLeg.IsLiquid(cfg.MinOptionVolume, cfg.MinOptionOpenInterest) ||
		!spread.FarLeg.IsLiquid(cfg.MinOptionVolume, cfg.MinOptionOpenInterest) {
		verdict.Passed = false
		verdict.FailureReason = models.ReasonIlliquid
		return verdict
	}

	if verdict.NetCredit < cfg.MinNetCredit {
		verdict.Passed = false
		verdict.FailureReason = models.ReasonInsufficientCredit
		return verdict
	}

	if verdict.IVDifferential < cfg.MinIVPremiumNearOverFar {
		verdict.Passed = false
		verdict.FailureReason = models.ReasonIVNotFavorable
		return verdict
	}

	if cfg.RequirePositiveNetTheta && verdict.NetTheta <= 0 {
		verdict.Passed = false
		verdict.FailureReason = models.ReasonNonPositiveTheta
		return verdict
	}

	return verdict
}
