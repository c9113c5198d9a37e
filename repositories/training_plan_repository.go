package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
)

var ErrTrainingPlanNotFound = errors.New("training plan not found")

type TrainingPlanRepository interface {
	GetByMatchID(ctx context.Context, matchID int) (*models.TrainingPlan, error)
	Upsert(ctx context.Context, plan *models.TrainingPlan) error
}

type postgresTrainingPlanRepository struct {
	db *sql.DB
}

func NewPostgresTrainingPlanRepository(db *sql.DB) TrainingPlanRepository {
	return &postgresTrainingPlanRepository{db: db}
}

func (r *postgresTrainingPlanRepository) GetByMatchID(ctx context.Context, matchID int) (*models.TrainingPlan, error) {
	query := `
		SELECT id, match_id, plan_name, focus_areas, last_updated
		FROM training_plans
		WHERE match_id = $1`

	plan := &models.TrainingPlan{}
	err := r.db.QueryRowContext(ctx, query, matchID).Scan(
		&plan.ID,
		&plan.MatchID,
		&plan.PlanName,
		&plan.FocusAreas,
		&plan.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainingPlanNotFound
		}
		return nil, fmt.Errorf("failed to scan training plan for match %d: %w", matchID, err)
	}
	return plan, nil
}

// Upsert создаёт план тренировок матча или заменяет существующий:
// на матч приходится не более одного плана (training_plans_match_id_key).
func (r *postgresTrainingPlanRepository) Upsert(ctx context.Context, plan *models.TrainingPlan) error {
	query := `
		INSERT INTO training_plans (match_id, plan_name, focus_areas, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT training_plans_match_id_key DO UPDATE SET
			plan_name = EXCLUDED.plan_name,
			focus_areas = EXCLUDED.focus_areas,
			last_updated = EXCLUDED.last_updated
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		plan.MatchID,
		plan.PlanName,
		plan.FocusAreas,
		plan.LastUpdated,
	).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert training plan for match %d: %w", plan.MatchID, err)
	}
	return nil
}
