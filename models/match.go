package models

import "time"

type MatchResult string

const (
	MatchResultWin  MatchResult = "Win"
	MatchResultDraw MatchResult = "Draw"
	MatchResultLoss MatchResult = "Loss"
)

func (r MatchResult) IsValid() bool {
	switch r {
	case MatchResultWin, MatchResultDraw, MatchResultLoss:
		return true
	}
	return false
}

type Match struct {
	ID            int          `json:"id"`
	MatchDate     time.Time    `json:"match_date"`
	OpponentName  string       `json:"opponent_name"`
	Venue         string       `json:"venue"`
	IsCompleted   bool         `json:"is_completed"`
	OurScore      int          `json:"our_score"`
	OpponentScore int          `json:"opponent_score"`
	Result        *MatchResult `json:"result,omitempty"`

	// Вложенные 1:1 сущности, заполняются сервисным слоем.
	SquadPlan    *SquadPlan    `json:"squad_plan,omitempty"`
	TrainingPlan *TrainingPlan `json:"training_plan,omitempty"`
	MatchStats   *MatchStat    `json:"match_stats,omitempty"`
}
