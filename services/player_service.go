package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/repositories"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	ListPlayers(ctx context.Context, skip, limit int) ([]models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
}

// PlayerInput — полное представление игрока; обновление всегда является
// полной заменой записи, частичного обновления нет.
type PlayerInput struct {
	Name             string                `json:"name"`
	Age              int                   `json:"age"`
	DateOfBirth      time.Time             `json:"date_of_birth"`
	Position         models.PlayerPosition `json:"position"`
	JerseyNumber     int                   `json:"jersey_number"`
	TransferPriceVND float64               `json:"transfer_price_vnd"`
	InjuryStatus     models.InjuryStatus   `json:"injury_status"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	player, err := playerFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNumberConflict) {
			return nil, ErrPlayerNumberConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, skip, limit int) ([]models.Player, error) {
	if skip < 0 || limit < 0 {
		return nil, ErrPaginationInvalid
	}

	players, err := s.playerRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	player, err := playerFromInput(input)
	if err != nil {
		return nil, err
	}
	player.ID = id

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerNumberConflict):
			return nil, ErrPlayerNumberConflict
		default:
			return nil, fmt.Errorf("failed to update player %d: %w", id, err)
		}
	}

	return player, nil
}

func playerFromInput(input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	if input.Age < 18 || input.Age > 45 {
		return nil, ErrPlayerAgeOutOfRange
	}
	if !input.Position.IsValid() {
		return nil, ErrPlayerPositionInvalid
	}
	if input.TransferPriceVND < 0 {
		return nil, ErrPlayerPriceNegative
	}

	status := input.InjuryStatus
	if status == "" {
		status = models.InjuryStatusFit
	}
	if !status.IsValid() {
		return nil, ErrPlayerInjuryStatusInvalid
	}

	return &models.Player{
		Name:             name,
		Age:              input.Age,
		DateOfBirth:      input.DateOfBirth,
		Position:         input.Position,
		JerseyNumber:     input.JerseyNumber,
		TransferPriceVND: input.TransferPriceVND,
		InjuryStatus:     status,
	}, nil
}
