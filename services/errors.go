package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// Ресурс не найден
	ErrPlayerNotFound       = errors.New("player not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrSquadPlanNotFound    = errors.New("squad plan not found for this match")
	ErrTrainingPlanNotFound = errors.New("training plan not found for this match")
	ErrMatchStatNotFound    = errors.New("statistics not found for this match")

	// Ошибки валидации и бизнес-правил
	ErrPlayerNameRequired        = errors.New("player name is required")
	ErrPlayerAgeOutOfRange       = errors.New("player age must be between 18 and 45")
	ErrPlayerPositionInvalid     = errors.New("invalid player position")
	ErrPlayerInjuryStatusInvalid = errors.New("invalid injury status")
	ErrPlayerPriceNegative       = errors.New("transfer price cannot be negative")
	ErrPaginationInvalid         = errors.New("skip and limit must be non-negative")
	ErrOpponentNameRequired      = errors.New("opponent name is required")
	ErrPastMatchNotCompleted     = errors.New("cannot schedule a past match that is not completed")
	ErrSquadPlayerInvalid        = errors.New("squad role references unknown player")
	ErrTrainingPlanNameRequired  = errors.New("training plan name is required")
	ErrStatsMatchNotCompleted    = errors.New("statistics can only be added to a completed match that exists")
	ErrStatsAlreadyExist         = errors.New("statistics already exist for this match, use update instead")
	ErrStatsPossessionOutOfRange = errors.New("ball possession percent must be between 0 and 100")

	// Ошибки конфликтов
	ErrPlayerNumberConflict = errors.New("jersey number is already assigned to another player")
)
