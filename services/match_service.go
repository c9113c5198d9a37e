package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/repositories"
)

type MatchService interface {
	ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListUpcomingMatches(ctx context.Context) ([]*models.Match, error)
	RecordMatchResult(ctx context.Context, matchID int, input RecordResultInput) (*models.Match, error)
}

type ScheduleMatchInput struct {
	MatchDate     time.Time           `json:"match_date"`
	OpponentName  string              `json:"opponent_name"`
	Venue         string              `json:"venue"`
	IsCompleted   bool                `json:"is_completed"`
	OurScore      int                 `json:"our_score"`
	OpponentScore int                 `json:"opponent_score"`
	Result        *models.MatchResult `json:"result"`
}

type RecordResultInput struct {
	OurScore      int `json:"our_score"`
	OpponentScore int `json:"opponent_score"`
}

type matchService struct {
	matchRepo    repositories.MatchRepository
	squadRepo    repositories.SquadRepository
	trainingRepo repositories.TrainingPlanRepository
	statRepo     repositories.MatchStatRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	squadRepo repositories.SquadRepository,
	trainingRepo repositories.TrainingPlanRepository,
	statRepo repositories.MatchStatRepository,
) MatchService {
	return &matchService{
		matchRepo:    matchRepo,
		squadRepo:    squadRepo,
		trainingRepo: trainingRepo,
		statRepo:     statRepo,
	}
}

func (s *matchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*models.Match, error) {
	opponent := strings.TrimSpace(input.OpponentName)
	if opponent == "" {
		return nil, ErrOpponentNameRequired
	}

	// Матч в прошлом обязан быть записан как завершённый.
	if truncateToDay(input.MatchDate).Before(truncateToDay(time.Now())) && !input.IsCompleted {
		return nil, ErrPastMatchNotCompleted
	}

	match := &models.Match{
		MatchDate:     input.MatchDate,
		OpponentName:  opponent,
		Venue:         input.Venue,
		IsCompleted:   input.IsCompleted,
		OurScore:      input.OurScore,
		OpponentScore: input.OpponentScore,
		Result:        input.Result,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to schedule match: %w", err)
	}

	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}

	if err := s.populateMatchDetails(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ListUpcomingMatches возвращает незавершённые матчи, отсортированные по
// дате. Сортировка выполняется на стороне приложения; при равных датах
// порядок стабилизируется вторичной сортировкой по id.
func (s *matchService) ListUpcomingMatches(ctx context.Context) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListIncomplete(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming matches: %w", err)
	}
	if matches == nil {
		return []*models.Match{}, nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchDate.Equal(matches[j].MatchDate) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].MatchDate.Before(matches[j].MatchDate)
	})

	return matches, nil
}

// RecordMatchResult полностью заменяет счёт матча, помечает его завершённым
// и перевычисляет результат. Повторный вызов допускается и действует как
// замена; отрицательные значения счёта не запрещены.
func (s *matchService) RecordMatchResult(ctx context.Context, matchID int, input RecordResultInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", matchID, err)
	}

	result := DeriveMatchResult(input.OurScore, input.OpponentScore)
	match.IsCompleted = true
	match.OurScore = input.OurScore
	match.OpponentScore = input.OpponentScore
	match.Result = &result

	if err := s.matchRepo.UpdateResult(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to record result for match %d: %w", matchID, err)
	}

	if err := s.populateMatchDetails(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// populateMatchDetails подгружает 1:1 зависимости матча отдельными
// запросами: план состава (с ролями и игроками), план тренировок, статистику.
func (s *matchService) populateMatchDetails(ctx context.Context, match *models.Match) error {
	plan, err := s.squadRepo.GetPlanByMatchID(ctx, nil, match.ID)
	switch {
	case err == nil:
		roles, rolesErr := s.squadRepo.ListRolesWithPlayers(ctx, plan.ID)
		if rolesErr != nil {
			return fmt.Errorf("failed to populate squad roles for match %d: %w", match.ID, rolesErr)
		}
		plan.Roles = roles
		match.SquadPlan = plan
	case !errors.Is(err, repositories.ErrSquadPlanNotFound):
		return fmt.Errorf("failed to populate squad plan for match %d: %w", match.ID, err)
	}

	training, err := s.trainingRepo.GetByMatchID(ctx, match.ID)
	switch {
	case err == nil:
		match.TrainingPlan = training
	case !errors.Is(err, repositories.ErrTrainingPlanNotFound):
		return fmt.Errorf("failed to populate training plan for match %d: %w", match.ID, err)
	}

	stat, err := s.statRepo.GetByMatchID(ctx, match.ID)
	switch {
	case err == nil:
		match.MatchStats = stat
	case !errors.Is(err, repositories.ErrMatchStatNotFound):
		return fmt.Errorf("failed to populate statistics for match %d: %w", match.ID, err)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
