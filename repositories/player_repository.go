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
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerNumberConflict = errors.New("player jersey number conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, skip, limit int) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	ExistsByID(ctx context.Context, exec SQLExecutor, id int) (bool, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, age, date_of_birth, position, jersey_number, transfer_price_vnd, injury_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Age,
		player.DateOfBirth,
		player.Position,
		player.JerseyNumber,
		player.TransferPriceVND,
		player.InjuryStatus,
	).Scan(&player.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "players_jersey_number_key" {
				return ErrPlayerNumberConflict
			}
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, name, age, date_of_birth, position, jersey_number, transfer_price_vnd, injury_status
		FROM players
		WHERE id = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.DateOfBirth,
		&player.Position,
		&player.JerseyNumber,
		&player.TransferPriceVND,
		&player.InjuryStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return player, nil
}

// List возвращает страницу игроков в порядке их хранения (по id).
func (r *postgresPlayerRepository) List(ctx context.Context, skip, limit int) ([]models.Player, error) {
	query := `
		SELECT id, name, age, date_of_birth, position, jersey_number, transfer_price_vnd, injury_status
		FROM players
		ORDER BY id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		scanErr := rows.Scan(
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
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET
			name = $1,
			age = $2,
			date_of_birth = $3,
			position = $4,
			jersey_number = $5,
			transfer_price_vnd = $6,
			injury_status = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		player.Name,
		player.Age,
		player.DateOfBirth,
		player.Position,
		player.JerseyNumber,
		player.TransferPriceVND,
		player.InjuryStatus,
		player.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "players_jersey_number_key" {
				return ErrPlayerNumberConflict
			}
		}
		return fmt.Errorf("failed to update player %d: %w", player.ID, err)
	}

	return checkAffectedRows(result, ErrPlayerNotFound)
}

// ExistsByID проверяет наличие игрока; exec == nil означает чтение вне транзакции.
func (r *postgresPlayerRepository) ExistsByID(ctx context.Context, exec SQLExecutor, id int) (bool, error) {
	executor := exec
	if executor == nil {
		executor = r.db
	}

	var exists bool
	err := executor.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM players WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check player existence for id %d: %w", id, err)
	}
	return exists, nil
}
