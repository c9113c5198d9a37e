package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
)

var ErrSquadPlanNotFound = errors.New("squad plan not found")

// SquadRepository обслуживает план состава матча и его роли. Методы,
// принимающие SQLExecutor, участвуют в транзакции замены плана.
type SquadRepository interface {
	GetPlanByMatchID(ctx context.Context, exec SQLExecutor, matchID int) (*models.SquadPlan, error)
	CreatePlan(ctx context.Context, exec SQLExecutor, plan *models.SquadPlan) error
	UpdatePlan(ctx context.Context, exec SQLExecutor, plan *models.SquadPlan) error
	DeleteRolesByPlanID(ctx context.Context, exec SQLExecutor, planID int) error
	CreateRole(ctx context.Context, exec SQLExecutor, role *models.SquadRole) error
	ListRolesWithPlayers(ctx context.Context, planID int) ([]models.SquadRole, error)
}

type postgresSquadRepository struct {
	db *sql.DB
}

func NewPostgresSquadRepository(db *sql.DB) SquadRepository {
	return &postgresSquadRepository{db: db}
}

func (r *postgresSquadRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSquadRepository) GetPlanByMatchID(ctx context.Context, exec SQLExecutor, matchID int) (*models.SquadPlan, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, match_id, formation, tactics_notes
		FROM squad_plans
		WHERE match_id = $1`

	plan := &models.SquadPlan{}
	err := executor.QueryRowContext(ctx, query, matchID).Scan(
		&plan.ID,
		&plan.MatchID,
		&plan.Formation,
		&plan.TacticsNotes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSquadPlanNotFound
		}
		return nil, fmt.Errorf("failed to scan squad plan for match %d: %w", matchID, err)
	}
	return plan, nil
}

func (r *postgresSquadRepository) CreatePlan(ctx context.Context, exec SQLExecutor, plan *models.SquadPlan) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO squad_plans (match_id, formation, tactics_notes)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query, plan.MatchID, plan.Formation, plan.TacticsNotes).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("failed to create squad plan for match %d: %w", plan.MatchID, err)
	}
	return nil
}

func (r *postgresSquadRepository) UpdatePlan(ctx context.Context, exec SQLExecutor, plan *models.SquadPlan) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE squad_plans SET
			formation = $1,
			tactics_notes = $2
		WHERE id = $3`

	result, err := executor.ExecContext(ctx, query, plan.Formation, plan.TacticsNotes, plan.ID)
	if err != nil {
		return fmt.Errorf("failed to update squad plan %d: %w", plan.ID, err)
	}
	return checkAffectedRows(result, ErrSquadPlanNotFound)
}

func (r *postgresSquadRepository) DeleteRolesByPlanID(ctx context.Context, exec SQLExecutor, planID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM squad_roles WHERE squad_plan_id = $1`, planID)
	if err != nil {
		return fmt.Errorf("failed to delete squad roles for plan %d: %w", planID, err)
	}
	return nil
}

func (r *postgresSquadRepository) CreateRole(ctx context.Context, exec SQLExecutor, role *models.SquadRole) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO squad_roles (squad_plan_id, player_id, is_starter, specific_role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		role.SquadPlanID,
		role.PlayerID,
		role.IsStarter,
		role.SpecificRole,
	).Scan(&role.ID)
	if err != nil {
		return fmt.Errorf("failed to create squad role (plan %d, player %d): %w", role.SquadPlanID, role.PlayerID, err)
	}
	return nil
}

// ListRolesWithPlayers возвращает роли плана вместе с данными игроков.
func (r *postgresSquadRepository) ListRolesWithPlayers(ctx context.Context, planID int) ([]models.SquadRole, error) {
	query := `
		SELECT
			sr.id, sr.squad_plan_id, sr.player_id, sr.is_starter, sr.specific_role,
			p.id, p.name, p.age, p.date_of_birth, p.position, p.jersey_number, p.transfer_price_vnd, p.injury_status
		FROM squad_roles sr
		JOIN players p ON sr.player_id = p.id
		WHERE sr.squad_plan_id = $1
		ORDER BY sr.id`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list squad roles for plan %d: %w", planID, err)
	}
	defer rows.Close()

	roles := make([]models.SquadRole, 0)
	for rows.Next() {
		var role models.SquadRole
		var player models.Player
		scanErr := rows.Scan(
			&role.ID,
			&role.SquadPlanID,
			&role.PlayerID,
			&role.IsStarter,
			&role.SpecificRole,
			&player.ID,
			&player.Name,
			&player.Age,
			&player.DateOfBirth,
			&player.Position,
			&player.JerseyNumber,
			&player.TransferPriceVND,
			&player.InjuryStatus,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan squad role row: %w", scanErr)
		}
		role.Player = &player
		roles = append(roles, role)
	}

	return roles, rows.Err()
}
