package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchService() (services.MatchService, *fakeMatchRepo, *fakeStatRepo, *fakeTrainingRepo, *fakeSquadRepo, *fakePlayerRepo) {
	playerRepo := newFakePlayerRepo()
	matchRepo := newFakeMatchRepo()
	squadRepo := newFakeSquadRepo(playerRepo)
	trainingRepo := newFakeTrainingRepo()
	statRepo := newFakeStatRepo()
	svc := services.NewMatchService(matchRepo, squadRepo, trainingRepo, statRepo)
	return svc, matchRepo, statRepo, trainingRepo, squadRepo, playerRepo
}

func scheduleInput(date time.Time, completed bool) services.ScheduleMatchInput {
	return services.ScheduleMatchInput{
		MatchDate:    date,
		OpponentName: "Hanoi FC",
		Venue:        "Home",
		IsCompleted:  completed,
	}
}

func TestScheduleMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects past match not marked completed", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		yesterday := time.Now().AddDate(0, 0, -1)
		_, err := svc.ScheduleMatch(ctx, scheduleInput(yesterday, false))
		assert.ErrorIs(t, err, services.ErrPastMatchNotCompleted)
	})

	t.Run("accepts past match marked completed", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		yesterday := time.Now().AddDate(0, 0, -1)
		match, err := svc.ScheduleMatch(ctx, scheduleInput(yesterday, true))
		require.NoError(t, err)
		assert.True(t, match.IsCompleted)
		assert.NotZero(t, match.ID)
	})

	t.Run("accepts future match", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		nextWeek := time.Now().AddDate(0, 0, 7)
		match, err := svc.ScheduleMatch(ctx, scheduleInput(nextWeek, false))
		require.NoError(t, err)
		assert.False(t, match.IsCompleted)
		assert.Nil(t, match.Result)
	})

	t.Run("accepts today regardless of completion", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		_, err := svc.ScheduleMatch(ctx, scheduleInput(time.Now(), false))
		assert.NoError(t, err)
	})

	t.Run("rejects empty opponent name", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		input := scheduleInput(time.Now().AddDate(0, 0, 1), false)
		input.OpponentName = "  "
		_, err := svc.ScheduleMatch(ctx, input)
		assert.ErrorIs(t, err, services.ErrOpponentNameRequired)
	})
}

func TestListUpcomingMatches(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _, _ := newMatchService()

	day := func(offset int) time.Time {
		return time.Date(2026, time.September, 1+offset, 0, 0, 0, 0, time.UTC)
	}

	// Три будущих матча вразнобой по датам, два из них на одну дату,
	// плюс один завершённый, который не должен попасть в выдачу.
	_, err := svc.ScheduleMatch(ctx, scheduleInput(day(5), false)) // id 1
	require.NoError(t, err)
	_, err = svc.ScheduleMatch(ctx, scheduleInput(day(2), false)) // id 2
	require.NoError(t, err)
	_, err = svc.ScheduleMatch(ctx, scheduleInput(day(5), false)) // id 3
	require.NoError(t, err)
	_, err = svc.ScheduleMatch(ctx, scheduleInput(day(1), true)) // id 4, завершён
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		matches, err := svc.ListUpcomingMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 3)

		for _, m := range matches {
			assert.False(t, m.IsCompleted)
		}

		// Неубывающие даты, при равных датах — возрастающий id.
		assert.Equal(t, 2, matches[0].ID)
		assert.Equal(t, 1, matches[1].ID)
		assert.Equal(t, 3, matches[2].ID)
	}
}

func TestRecordMatchResult(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown match", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		_, err := svc.RecordMatchResult(ctx, 99, services.RecordResultInput{OurScore: 1, OpponentScore: 0})
		assert.ErrorIs(t, err, services.ErrMatchNotFound)
	})

	t.Run("completes the match and derives the result", func(t *testing.T) {
		tests := []struct {
			name     string
			our, opp int
			want     models.MatchResult
		}{
			{"win", 2, 1, models.MatchResultWin},
			{"loss", 0, 3, models.MatchResultLoss},
			{"draw", 1, 1, models.MatchResultDraw},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc, _, _, _, _, _ := newMatchService()

				scheduled, err := svc.ScheduleMatch(ctx, scheduleInput(time.Now().AddDate(0, 0, 3), false))
				require.NoError(t, err)

				match, err := svc.RecordMatchResult(ctx, scheduled.ID, services.RecordResultInput{
					OurScore:      tc.our,
					OpponentScore: tc.opp,
				})
				require.NoError(t, err)
				assert.True(t, match.IsCompleted)
				require.NotNil(t, match.Result)
				assert.Equal(t, tc.want, *match.Result)

				// Результат виден при последующем чтении.
				got, err := svc.GetMatchByID(ctx, scheduled.ID)
				require.NoError(t, err)
				assert.True(t, got.IsCompleted)
				require.NotNil(t, got.Result)
				assert.Equal(t, tc.want, *got.Result)
			})
		}
	})

	t.Run("repeated call replaces scores and result", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		scheduled, err := svc.ScheduleMatch(ctx, scheduleInput(time.Now().AddDate(0, 0, 3), false))
		require.NoError(t, err)

		_, err = svc.RecordMatchResult(ctx, scheduled.ID, services.RecordResultInput{OurScore: 0, OpponentScore: 1})
		require.NoError(t, err)

		match, err := svc.RecordMatchResult(ctx, scheduled.ID, services.RecordResultInput{OurScore: 4, OpponentScore: 1})
		require.NoError(t, err)
		assert.Equal(t, 4, match.OurScore)
		require.NotNil(t, match.Result)
		assert.Equal(t, models.MatchResultWin, *match.Result)
	})
}

func TestGetMatchByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown match", func(t *testing.T) {
		svc, _, _, _, _, _ := newMatchService()

		_, err := svc.GetMatchByID(ctx, 5)
		assert.ErrorIs(t, err, services.ErrMatchNotFound)
	})

	t.Run("populates nested one-to-one entities", func(t *testing.T) {
		svc, _, statRepo, trainingRepo, squadRepo, playerRepo := newMatchService()

		scheduled, err := svc.ScheduleMatch(ctx, scheduleInput(time.Now().AddDate(0, 0, 3), false))
		require.NoError(t, err)

		player := models.Player{Name: "Le Van C", Age: 27, Position: models.PositionGoalkeeper, JerseyNumber: 1, InjuryStatus: models.InjuryStatusFit}
		require.NoError(t, playerRepo.Create(ctx, &player))

		plan := models.SquadPlan{MatchID: scheduled.ID, Formation: "4-4-2"}
		require.NoError(t, squadRepo.CreatePlan(ctx, nil, &plan))
		require.NoError(t, squadRepo.CreateRole(ctx, nil, &models.SquadRole{SquadPlanID: plan.ID, PlayerID: player.ID, IsStarter: true}))

		require.NoError(t, trainingRepo.Upsert(ctx, &models.TrainingPlan{MatchID: scheduled.ID, PlanName: "High press"}))
		require.NoError(t, statRepo.Create(ctx, &models.MatchStat{MatchID: scheduled.ID, TotalPasses: 40, SuccessfulPasses: 30, PassSuccessRate: 75}))

		match, err := svc.GetMatchByID(ctx, scheduled.ID)
		require.NoError(t, err)

		require.NotNil(t, match.SquadPlan)
		assert.Equal(t, "4-4-2", match.SquadPlan.Formation)
		require.Len(t, match.SquadPlan.Roles, 1)
		require.NotNil(t, match.SquadPlan.Roles[0].Player)
		assert.Equal(t, "Le Van C", match.SquadPlan.Roles[0].Player.Name)

		require.NotNil(t, match.TrainingPlan)
		assert.Equal(t, "High press", match.TrainingPlan.PlanName)

		require.NotNil(t, match.MatchStats)
		assert.InDelta(t, 75.0, match.MatchStats.PassSuccessRate, 0.0001)
	})
}
