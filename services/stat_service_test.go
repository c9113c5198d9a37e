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

func newStatFixture(t *testing.T, completed bool) (services.StatService, int) {
	t.Helper()

	matchRepo := newFakeMatchRepo()
	statRepo := newFakeStatRepo()
	svc := services.NewStatService(matchRepo, statRepo)

	match := models.Match{
		MatchDate:    time.Now().AddDate(0, 0, -7),
		OpponentName: "HAGL",
		Venue:        "Home",
		IsCompleted:  completed,
	}
	require.NoError(t, matchRepo.Create(context.Background(), &match))

	return svc, match.ID
}

func statInput() services.MatchStatInput {
	return services.MatchStatInput{
		ExpectedGoals:         1.8,
		ShotsOnTarget:         6,
		BallPossessionPercent: 55.5,
		TotalPasses:           40,
		SuccessfulPasses:      30,
		Interceptions:         11,
		SuccessfulTackles:     14,
		AerialDisputesWon:     9,
		TotalFouls:            12,
		YellowCards:           2,
		RedCards:              0,
	}
}

func TestAddMatchStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("stores statistics with derived pass success rate", func(t *testing.T) {
		svc, matchID := newStatFixture(t, true)

		stat, err := svc.AddMatchStatistics(ctx, matchID, statInput())
		require.NoError(t, err)
		assert.NotZero(t, stat.ID)
		assert.Equal(t, matchID, stat.MatchID)
		assert.InDelta(t, 75.0, stat.PassSuccessRate, 0.0001)

		got, err := svc.GetMatchStatistics(ctx, matchID)
		require.NoError(t, err)
		assert.Equal(t, stat, got)
	})

	t.Run("derived rate is zero for zero passes", func(t *testing.T) {
		svc, matchID := newStatFixture(t, true)

		input := statInput()
		input.TotalPasses = 0
		input.SuccessfulPasses = 0

		stat, err := svc.AddMatchStatistics(ctx, matchID, input)
		require.NoError(t, err)
		assert.Zero(t, stat.PassSuccessRate)
	})

	t.Run("rejects a match that is not completed", func(t *testing.T) {
		svc, matchID := newStatFixture(t, false)

		_, err := svc.AddMatchStatistics(ctx, matchID, statInput())
		assert.ErrorIs(t, err, services.ErrStatsMatchNotCompleted)
	})

	t.Run("rejects an unknown match", func(t *testing.T) {
		svc, _ := newStatFixture(t, true)

		_, err := svc.AddMatchStatistics(ctx, 999, statInput())
		assert.ErrorIs(t, err, services.ErrStatsMatchNotCompleted)
	})

	t.Run("rejects a second record for the same match", func(t *testing.T) {
		svc, matchID := newStatFixture(t, true)

		_, err := svc.AddMatchStatistics(ctx, matchID, statInput())
		require.NoError(t, err)

		_, err = svc.AddMatchStatistics(ctx, matchID, statInput())
		assert.ErrorIs(t, err, services.ErrStatsAlreadyExist)
	})

	t.Run("rejects possession outside 0..100", func(t *testing.T) {
		svc, matchID := newStatFixture(t, true)

		input := statInput()
		input.BallPossessionPercent = 101
		_, err := svc.AddMatchStatistics(ctx, matchID, input)
		assert.ErrorIs(t, err, services.ErrStatsPossessionOutOfRange)

		input.BallPossessionPercent = -0.5
		_, err = svc.AddMatchStatistics(ctx, matchID, input)
		assert.ErrorIs(t, err, services.ErrStatsPossessionOutOfRange)
	})
}

func TestGetMatchStatistics(t *testing.T) {
	svc, matchID := newStatFixture(t, true)

	_, err := svc.GetMatchStatistics(context.Background(), matchID)
	assert.ErrorIs(t, err, services.ErrMatchStatNotFound)
}
