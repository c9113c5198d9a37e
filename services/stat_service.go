package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/repositories"
)

type StatService interface {
	AddMatchStatistics(ctx context.Context, matchID int, input MatchStatInput) (*models.MatchStat, error)
	GetMatchStatistics(ctx context.Context, matchID int) (*models.MatchStat, error)
}

// MatchStatInput не содержит pass_success_rate: показатель всегда
// вычисляется из пар total/successful passes и не принимается от клиента.
type MatchStatInput struct {
	ExpectedGoals         float64 `json:"expected_goals"`
	ShotsOnTarget         int     `json:"shots_on_target"`
	BallPossessionPercent float64 `json:"ball_possession_percent"`
	TotalPasses           int     `json:"total_passes"`
	SuccessfulPasses      int     `json:"successful_passes"`
	Interceptions         int     `json:"interceptions"`
	SuccessfulTackles     int     `json:"successful_tackles"`
	AerialDisputesWon     int     `json:"aerial_disputes_won"`
	TotalFouls            int     `json:"total_fouls"`
	YellowCards           int     `json:"yellow_cards"`
	RedCards              int     `json:"red_cards"`
}

type statService struct {
	matchRepo repositories.MatchRepository
	statRepo  repositories.MatchStatRepository
}

func NewStatService(
	matchRepo repositories.MatchRepository,
	statRepo repositories.MatchStatRepository,
) StatService {
	return &statService{
		matchRepo: matchRepo,
		statRepo:  statRepo,
	}
}

// AddMatchStatistics добавляет статистику завершённого матча. Операция
// только создаёт запись: повторное добавление для того же матча отклоняется.
func (s *statService) AddMatchStatistics(ctx context.Context, matchID int, input MatchStatInput) (*models.MatchStat, error) {
	if input.BallPossessionPercent < 0 || input.BallPossessionPercent > 100 {
		return nil, ErrStatsPossessionOutOfRange
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrStatsMatchNotCompleted
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", matchID, err)
	}
	if !match.IsCompleted {
		return nil, ErrStatsMatchNotCompleted
	}

	stat := &models.MatchStat{
		MatchID:               matchID,
		ExpectedGoals:         input.ExpectedGoals,
		ShotsOnTarget:         input.ShotsOnTarget,
		BallPossessionPercent: input.BallPossessionPercent,
		TotalPasses:           input.TotalPasses,
		SuccessfulPasses:      input.SuccessfulPasses,
		PassSuccessRate:       DerivePassSuccessRate(input.TotalPasses, input.SuccessfulPasses),
		Interceptions:         input.Interceptions,
		SuccessfulTackles:     input.SuccessfulTackles,
		AerialDisputesWon:     input.AerialDisputesWon,
		TotalFouls:            input.TotalFouls,
		YellowCards:           input.YellowCards,
		RedCards:              input.RedCards,
	}

	if err := s.statRepo.Create(ctx, stat); err != nil {
		if errors.Is(err, repositories.ErrMatchStatConflict) {
			return nil, ErrStatsAlreadyExist
		}
		return nil, fmt.Errorf("failed to create statistics for match %d: %w", matchID, err)
	}

	return stat, nil
}

func (s *statService) GetMatchStatistics(ctx context.Context, matchID int) (*models.MatchStat, error) {
	stat, err := s.statRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchStatNotFound) {
			return nil, ErrMatchStatNotFound
		}
		return nil, fmt.Errorf("failed to get statistics for match %d: %w", matchID, err)
	}
	return stat, nil
}
