package models

import "time"

type PlayerPosition string

const (
	PositionGoalkeeper          PlayerPosition = "Goalkeeper"
	PositionCenterBack          PlayerPosition = "Center Back"
	PositionLeftBack            PlayerPosition = "Left Back"
	PositionRightBack           PlayerPosition = "Right Back"
	PositionDefensiveMidfielder PlayerPosition = "Defensive Midfielder"
	PositionCenterMidfielder    PlayerPosition = "Center Midfielder"
	PositionAttackingMidfielder PlayerPosition = "Attacking Midfielder"
	PositionLeftWinger          PlayerPosition = "Left Winger"
	PositionRightWinger         PlayerPosition = "Right Winger"
	PositionStriker             PlayerPosition = "Striker"
)

func (p PlayerPosition) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionCenterBack, PositionLeftBack, PositionRightBack,
		PositionDefensiveMidfielder, PositionCenterMidfielder, PositionAttackingMidfielder,
		PositionLeftWinger, PositionRightWinger, PositionStriker:
		return true
	}
	return false
}

type InjuryStatus string

const (
	InjuryStatusFit       InjuryStatus = "Fit"
	InjuryStatusMinor     InjuryStatus = "Minor Injury"
	InjuryStatusLongTerm  InjuryStatus = "Long Term Injury"
	InjuryStatusSuspended InjuryStatus = "Suspended"
)

func (s InjuryStatus) IsValid() bool {
	switch s {
	case InjuryStatusFit, InjuryStatusMinor, InjuryStatusLongTerm, InjuryStatusSuspended:
		return true
	}
	return false
}

type Player struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Age              int            `json:"age"`
	DateOfBirth      time.Time      `json:"date_of_birth"`
	Position         PlayerPosition `json:"position"`
	JerseyNumber     int            `json:"jersey_number"`
	TransferPriceVND float64        `json:"transfer_price_vnd"`
	InjuryStatus     InjuryStatus   `json:"injury_status"`
}
