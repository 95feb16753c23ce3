package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/realtime"
)

func TestMatchService_CreateValidation(t *testing.T) {
	e := bracketEnv(t)
	e.store.addCompetition(2, models.CompetitionStatusActive, 1, 2)
	e.store.addPhase(40, 2, models.PhaseTypeGroupStage)
	ctx := context.Background()

	_, err := e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 1, AwayTeamID: 1})
	assert.ErrorIs(t, err, ErrSameTeams)

	_, err = e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 1, AwayTeamID: 5})
	assert.ErrorIs(t, err, ErrTeamNotInPool)

	_, err = e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 1, AwayTeamID: 2, PhaseID: intPtr(40)})
	assert.ErrorIs(t, err, ErrPhaseCompetitionMismatch)

	e.store.competitions[competitionID].Status = models.CompetitionStatusClosed
	_, err = e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 1, AwayTeamID: 2})
	assert.ErrorIs(t, err, ErrCompetitionClosed)
}

func TestMatchService_GhostMatchCountsForStandings(t *testing.T) {
	e := bracketEnv(t)
	ctx := context.Background()

	m, err := e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 2, AwayTeamID: 3})
	require.NoError(t, err)
	assert.Nil(t, m.PhaseID)
	assert.Equal(t, models.MatchStatusScheduled, m.Status)
	assert.Equal(t, fixedNow, m.ScheduledAt)

	_, err = e.matches.StartMatch(ctx, m.ID)
	require.NoError(t, err)
	_, err = e.matches.UpdateScore(ctx, m.ID, ScoreInput{HomeScore: 1, AwayScore: 0})
	require.NoError(t, err)
	_, err = e.matches.FinishMatch(ctx, m.ID)
	require.NoError(t, err)

	ranking, err := e.standings.Ranking(ctx, competitionID)
	require.NoError(t, err)
	assert.Equal(t, 2, ranking[0])
}

func TestMatchService_Lifecycle(t *testing.T) {
	e := bracketEnv(t)
	ctx := context.Background()

	m, err := e.matches.CreateMatch(ctx, competitionID, CreateMatchInput{HomeTeamID: 1, AwayTeamID: 2, PhaseID: intPtr(groupPhaseID)})
	require.NoError(t, err)

	_, err = e.matches.UpdateScore(ctx, m.ID, ScoreInput{HomeScore: 1})
	assert.ErrorIs(t, err, ErrMatchNotLive, "scheduled matches have no score yet")

	_, err = e.matches.FinishMatch(ctx, m.ID)
	assert.ErrorIs(t, err, ErrInvalidMatchTransition)

	live, err := e.matches.StartMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusLive, live.Status)

	_, err = e.matches.UpdateScore(ctx, m.ID, ScoreInput{HomeScore: -1})
	assert.ErrorIs(t, err, ErrNegativeScore)

	scored, err := e.matches.UpdateScore(ctx, m.ID, ScoreInput{HomeScore: 2, AwayScore: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, scored.HomeScore)

	done, err := e.matches.FinishMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusFinished, done.Status)

	_, err = e.matches.UpdateScore(ctx, m.ID, ScoreInput{HomeScore: 5, AwayScore: 1})
	assert.ErrorIs(t, err, ErrMatchNotLive, "finishing freezes the score")
	_, err = e.matches.StartMatch(ctx, m.ID)
	assert.ErrorIs(t, err, ErrInvalidMatchTransition)

	stored, err := e.matches.GetMatchByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.HomeScore)
	assert.Equal(t, 1, stored.AwayScore)

	// create, start, score, finish
	require.Len(t, e.broadcaster.messages, 4)
	for i, msg := range e.broadcaster.messages {
		assert.Equal(t, realtime.MessageMatchUpdated, msg.Type)
		assert.Equal(t, "competition_1", e.broadcaster.rooms[i])
	}
}

func TestMatchService_Delete(t *testing.T) {
	e := bracketEnv(t)
	ctx := context.Background()
	m := e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 1, AwayTeamID: 2})

	release, err := e.guard.TryAcquire(groupPhaseID)
	require.NoError(t, err)
	assert.ErrorIs(t, e.matches.DeleteMatch(ctx, m.ID), ErrPhaseBusy)
	release()

	require.NoError(t, e.matches.DeleteMatch(ctx, m.ID))
	assert.NotContains(t, e.store.matches, m.ID)
	require.Len(t, e.broadcaster.messages, 1)
	assert.Equal(t, realtime.MessageMatchDeleted, e.broadcaster.messages[0].Type)
}
