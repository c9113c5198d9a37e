package models

import "time"

type TrainingPlan struct {
	ID          int       `json:"id"`
	MatchID     int       `json:"match_id"`
	PlanName    string    `json:"plan_name"`
	FocusAreas  *string   `json:"focus_areas,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}
