package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/lib/pq"
)

var (
	ErrMatchStatNotFound = errors.New("match statistics not found")
	ErrMatchStatConflict = errors.New("match statistics already exist")
)

type MatchStatRepository interface {
	Create(ctx context.Context, stat *models.MatchStat) error
	GetByMatchID(ctx context.Context, matchID int) (*models.MatchStat, error)
}

type postgresMatchStatRepository struct {
	db *sql.DB
}

func NewPostgresMatchStatRepository(db *sql.DB) MatchStatRepository {
	return &postgresMatchStatRepository{db: db}
}

func (r *postgresMatchStatRepository) Create(ctx context.Context, stat *models.MatchStat) error {
	query := `
		INSERT INTO match_stats
			(match_id, expected_goals, shots_on_target, ball_possession_percent,
			 total_passes, successful_passes, pass_success_rate,
			 interceptions, successful_tackles, aerial_disputes_won,
			 total_fouls, yellow_cards, red_cards)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		stat.MatchID,
		stat.ExpectedGoals,
		stat.ShotsOnTarget,
		stat.BallPossessionPercent,
		stat.TotalPasses,
		stat.SuccessfulPasses,
		stat.PassSuccessRate,
		stat.Interceptions,
		stat.SuccessfulTackles,
		stat.AerialDisputesWon,
		stat.TotalFouls,
		stat.YellowCards,
		stat.RedCards,
	).Scan(&stat.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "match_stats_match_id_key" {
				return ErrMatchStatConflict
			}
		}
		return fmt.Errorf("failed to create match statistics for match %d: %w", stat.MatchID, err)
	}
	return nil
}

func (r *postgresMatchStatRepository) GetByMatchID(ctx context.Context, matchID int) (*models.MatchStat, error) {
	query := `
		SELECT id, match_id, expected_goals, shots_on_target, ball_possession_percent,
		       total_passes, successful_passes, pass_success_rate,
		       interceptions, successful_tackles, aerial_disputes_won,
		       total_fouls, yellow_cards, red_cards
		FROM match_stats
		WHERE match_id = $1`

	stat := &models.MatchStat{}
	err := r.db.QueryRowContext(ctx, query, matchID).Scan(
		&stat.ID,
		&stat.MatchID,
		&stat.ExpectedGoals,
		&stat.ShotsOnTarget,
		&stat.BallPossessionPercent,
		&stat.TotalPasses,
		&stat.SuccessfulPasses,
		&stat.PassSuccessRate,
		&stat.Interceptions,
		&stat.SuccessfulTackles,
		&stat.AerialDisputesWon,
		&stat.TotalFouls,
		&stat.YellowCards,
		&stat.RedCards,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchStatNotFound
		}
		return nil, fmt.Errorf("failed to scan match statistics for match %d: %w", matchID, err)
	}
	return stat, nil
}
