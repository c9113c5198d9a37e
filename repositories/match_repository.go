package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListIncomplete(ctx context.Context) ([]*models.Match, error)
	UpdateResult(ctx context.Context, match *models.Match) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (match_date, opponent_name, venue, is_completed, our_score, opponent_score, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		match.MatchDate,
		match.OpponentName,
		match.Venue,
		match.IsCompleted,
		match.OurScore,
		match.OpponentScore,
		match.Result,
	).Scan(&match.ID)

	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, match_date, opponent_name, venue, is_completed, our_score, opponent_score, result
		FROM matches
		WHERE id = $1`

	return r.scanMatch(r.db.QueryRowContext(ctx, query, id), id)
}

// ListIncomplete возвращает незавершённые матчи без сортировки:
// порядок — ответственность сервисного слоя.
func (r *postgresMatchRepository) ListIncomplete(ctx context.Context) ([]*models.Match, error) {
	query := `
		SELECT id, match_date, opponent_name, venue, is_completed, our_score, opponent_score, result
		FROM matches
		WHERE is_completed = FALSE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var match models.Match
		var result sql.NullString
		scanErr := rows.Scan(
			&match.ID,
			&match.MatchDate,
			&match.OpponentName,
			&match.Venue,
			&match.IsCompleted,
			&match.OurScore,
			&match.OpponentScore,
			&result,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		if result.Valid {
			mr := models.MatchResult(result.String)
			match.Result = &mr
		}
		matches = append(matches, &match)
	}

	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			is_completed = $1,
			our_score = $2,
			opponent_score = $3,
			result = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		match.IsCompleted,
		match.OurScore,
		match.OpponentScore,
		match.Result,
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %d result: %w", match.ID, err)
	}

	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) scanMatch(row *sql.Row, id int) (*models.Match, error) {
	match := &models.Match{}
	var result sql.NullString

	err := row.Scan(
		&match.ID,
		&match.MatchDate,
		&match.OpponentName,
		&match.Venue,
		&match.IsCompleted,
		&match.OurScore,
		&match.OpponentScore,
		&result,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	if result.Valid {
		mr := models.MatchResult(result.String)
		match.Result = &mr
	}
	return match, nil
}
