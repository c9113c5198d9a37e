package models

type SquadPlan struct {
	ID           int     `json:"id"`
	MatchID      int     `json:"match_id"`
	Formation    string  `json:"formation"`
	TacticsNotes *string `json:"tactics_notes,omitempty"`

	Roles []SquadRole `json:"roles"`
}

type SquadRole struct {
	ID           int     `json:"id"`
	SquadPlanID  int     `json:"squad_plan_id"`
	PlayerID     int     `json:"player_id"`
	IsStarter    bool    `json:"is_starter"`
	SpecificRole *string `json:"specific_role,omitempty"`

	Player *Player `json:"player,omitempty"`
}
