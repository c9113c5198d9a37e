package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/repositories"
)

const defaultFormation = "4-3-3"

type SquadService interface {
	SetSquadPlan(ctx context.Context, matchID int, input SetSquadPlanInput) (*models.SquadPlan, error)
	GetSquadPlan(ctx context.Context, matchID int) (*models.SquadPlan, error)
}

type SetSquadPlanInput struct {
	Formation    string           `json:"formation"`
	TacticsNotes *string          `json:"tactics_notes"`
	Roles        []SquadRoleInput `json:"roles"`
}

type SquadRoleInput struct {
	PlayerID     int     `json:"player_id"`
	IsStarter    bool    `json:"is_starter"`
	SpecificRole *string `json:"specific_role"`
}

type squadService struct {
	matchRepo  repositories.MatchRepository
	playerRepo repositories.PlayerRepository
	squadRepo  repositories.SquadRepository
	txManager  repositories.TxManager
}

func NewSquadService(
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
	squadRepo repositories.SquadRepository,
	txManager repositories.TxManager,
) SquadService {
	return &squadService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		squadRepo:  squadRepo,
		txManager:  txManager,
	}
}

// SetSquadPlan атомарно заменяет план состава матча: старые роли удаляются,
// план создаётся или обновляется, новые роли вставляются — всё в одной
// транзакции. Ошибка на любой роли откатывает операцию целиком, так что
// прежний план остаётся нетронутым. Одновременные вызовы для одного матча
// не сериализуются сервисом: побеждает последняя зафиксированная транзакция.
func (s *squadService) SetSquadPlan(ctx context.Context, matchID int, input SetSquadPlanInput) (*models.SquadPlan, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", matchID, err)
	}

	formation := input.Formation
	if formation == "" {
		formation = defaultFormation
	}

	var plan *models.SquadPlan
	err := s.txManager.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		existing, err := s.squadRepo.GetPlanByMatchID(ctx, exec, matchID)
		switch {
		case err == nil:
			// Замена: сносим роли существующего плана, обновляем его шапку.
			if err := s.squadRepo.DeleteRolesByPlanID(ctx, exec, existing.ID); err != nil {
				return err
			}
			existing.Formation = formation
			existing.TacticsNotes = input.TacticsNotes
			if err := s.squadRepo.UpdatePlan(ctx, exec, existing); err != nil {
				return err
			}
			plan = existing
		case errors.Is(err, repositories.ErrSquadPlanNotFound):
			plan = &models.SquadPlan{
				MatchID:      matchID,
				Formation:    formation,
				TacticsNotes: input.TacticsNotes,
			}
			if err := s.squadRepo.CreatePlan(ctx, exec, plan); err != nil {
				return err
			}
		default:
			return err
		}

		for _, roleInput := range input.Roles {
			exists, err := s.playerRepo.ExistsByID(ctx, exec, roleInput.PlayerID)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: player id %d", ErrSquadPlayerInvalid, roleInput.PlayerID)
			}

			role := &models.SquadRole{
				SquadPlanID:  plan.ID,
				PlayerID:     roleInput.PlayerID,
				IsStarter:    roleInput.IsStarter,
				SpecificRole: roleInput.SpecificRole,
			}
			if err := s.squadRepo.CreateRole(ctx, exec, role); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSquadPlayerInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to replace squad plan for match %d: %w", matchID, err)
	}

	roles, err := s.squadRepo.ListRolesWithPlayers(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load squad roles for plan %d: %w", plan.ID, err)
	}
	plan.Roles = roles

	return plan, nil
}

func (s *squadService) GetSquadPlan(ctx context.Context, matchID int) (*models.SquadPlan, error) {
	plan, err := s.squadRepo.GetPlanByMatchID(ctx, nil, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrSquadPlanNotFound) {
			return nil, ErrSquadPlanNotFound
		}
		return nil, fmt.Errorf("failed to get squad plan for match %d: %w", matchID, err)
	}

	roles, err := s.squadRepo.ListRolesWithPlayers(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load squad roles for plan %d: %w", plan.ID, err)
	}
	plan.Roles = roles

	return plan, nil
}
