package models

type MatchStat struct {
	ID      int `json:"id"`
	MatchID int `json:"match_id"`

	// Атакующие метрики
	ExpectedGoals float64 `json:"expected_goals"`
	ShotsOnTarget int     `json:"shots_on_target"`

	// Владение и пас
	BallPossessionPercent float64 `json:"ball_possession_percent"`
	TotalPasses           int     `json:"total_passes"`
	SuccessfulPasses      int     `json:"successful_passes"`
	PassSuccessRate       float64 `json:"pass_success_rate"` // Вычисляется, не принимается от клиента

	// Оборонительные метрики
	Interceptions     int `json:"interceptions"`
	SuccessfulTackles int `json:"successful_tackles"`
	AerialDisputesWon int `json:"aerial_disputes_won"`

	TotalFouls  int `json:"total_fouls"`
	YellowCards int `json:"yellow_cards"`
	RedCards    int `json:"red_cards"`
}
