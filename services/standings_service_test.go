package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
)

func TestStandingsService(t *testing.T) {
	e := newEnv()
	e.store.addTeam(1, "A")
	e.store.addTeam(2, "B")
	e.store.addTeam(3, "C")
	e.store.addTeam(9, "Guest")
	e.store.addCompetition(competitionID, models.CompetitionStatusActive, 1, 2, 3)

	e.store.addMatch(models.Match{CompetitionID: competitionID, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, Status: models.MatchStatusFinished})
	e.store.addMatch(models.Match{CompetitionID: competitionID, HomeTeamID: 1, AwayTeamID: 3, HomeScore: 1, AwayScore: 1, Status: models.MatchStatusFinished})
	// Not in the pool: ignored.
	e.store.addMatch(models.Match{CompetitionID: competitionID, HomeTeamID: 2, AwayTeamID: 9, HomeScore: 7, Status: models.MatchStatusFinished})
	// Unfinished: ignored.
	e.store.addMatch(models.Match{CompetitionID: competitionID, HomeTeamID: 3, AwayTeamID: 2, HomeScore: 0, AwayScore: 4, Status: models.MatchStatusLive})

	standings, err := e.standings.Standings(context.Background(), competitionID)
	require.NoError(t, err)
	require.Len(t, standings, 3)

	assert.Equal(t, 1, standings[0].TeamID)
	assert.Equal(t, 4, standings[0].Points)
	assert.Equal(t, 3, standings[1].TeamID)
	assert.Equal(t, 1, standings[1].Points)
	assert.Equal(t, 2, standings[2].TeamID)
	assert.Equal(t, -2, standings[2].GoalDifference)

	require.NotNil(t, standings[0].Team)
	assert.Equal(t, "A", standings[0].Team.Name)

	ranking, err := e.standings.Ranking(context.Background(), competitionID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, ranking)

	_, err = e.standings.Standings(context.Background(), 77)
	assert.ErrorIs(t, err, repositories.ErrCompetitionNotFound)
}
