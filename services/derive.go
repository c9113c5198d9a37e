package services

import (
	"math"

	"github.com/M1nhDuke/PB-075/models"
)

// DeriveMatchResult определяет исход матча по счёту.
func DeriveMatchResult(ourScore, opponentScore int) models.MatchResult {
	switch {
	case ourScore > opponentScore:
		return models.MatchResultWin
	case ourScore < opponentScore:
		return models.MatchResultLoss
	default:
		return models.MatchResultDraw
	}
}

// DerivePassSuccessRate возвращает процент точных передач, округлённый до
// двух знаков. При нулевом числе передач возвращает 0.
func DerivePassSuccessRate(totalPasses, successfulPasses int) float64 {
	if totalPasses == 0 {
		return 0.0
	}
	rate := float64(successfulPasses) / float64(totalPasses) * 100
	return math.Round(rate*100) / 100
}
