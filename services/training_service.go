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

type TrainingService interface {
	SetTrainingPlan(ctx context.Context, matchID int, input TrainingPlanInput) (*models.TrainingPlan, error)
	GetTrainingPlan(ctx context.Context, matchID int) (*models.TrainingPlan, error)
}

type TrainingPlanInput struct {
	PlanName   string  `json:"plan_name"`
	FocusAreas *string `json:"focus_areas"`
}

type trainingService struct {
	matchRepo    repositories.MatchRepository
	trainingRepo repositories.TrainingPlanRepository
}

func NewTrainingService(
	matchRepo repositories.MatchRepository,
	trainingRepo repositories.TrainingPlanRepository,
) TrainingService {
	return &trainingService{
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
	}
}

// SetTrainingPlan создаёт или заменяет план тренировок матча (1:1).
// Дата last_updated всегда выставляется текущим днём.
func (s *trainingService) SetTrainingPlan(ctx context.Context, matchID int, input TrainingPlanInput) (*models.TrainingPlan, error) {
	name := strings.TrimSpace(input.PlanName)
	if name == "" {
		return nil, ErrTrainingPlanNameRequired
	}

	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", matchID, err)
	}

	plan := &models.TrainingPlan{
		MatchID:     matchID,
		PlanName:    name,
		FocusAreas:  input.FocusAreas,
		LastUpdated: truncateToDay(time.Now()),
	}

	if err := s.trainingRepo.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to set training plan for match %d: %w", matchID, err)
	}

	return plan, nil
}

func (s *trainingService) GetTrainingPlan(ctx context.Context, matchID int) (*models.TrainingPlan, error) {
	plan, err := s.trainingRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainingPlanNotFound) {
			return nil, ErrTrainingPlanNotFound
		}
		return nil, fmt.Errorf("failed to get training plan for match %d: %w", matchID, err)
	}
	return plan, nil
}
