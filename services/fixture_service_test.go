package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/models"
)

func fixtureEnv(t *testing.T) *env {
	t.Helper()
	e := bracketEnv(t)
	e.store.bindings[competitionID] = []int{1, 2, 3, 4, 5}
	return e
}

func TestRegenerateGroupFixtures(t *testing.T) {
	e := fixtureEnv(t)
	stale := e.store.addMatch(finishedIn(groupPhaseID, 1, 5, 3, 0))
	kickoff := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	created, err := e.fixtures.RegenerateGroupFixtures(context.Background(), groupPhaseID, GroupFixturesInput{
		Groups:      [][]int{{1, 2, 3}, {4, 5}},
		ScheduledAt: &kickoff,
	})
	require.NoError(t, err)

	assert.Equal(t, []brackets.MatchPair{
		{HomeTeamID: 1, AwayTeamID: 2},
		{HomeTeamID: 1, AwayTeamID: 3},
		{HomeTeamID: 2, AwayTeamID: 3},
		{HomeTeamID: 4, AwayTeamID: 5},
	}, pairsOf(created))
	for _, m := range created {
		assert.Equal(t, kickoff, m.ScheduledAt)
	}
	assert.Equal(t, "delete matches of phase 10", e.store.ops[0])
	assert.NotContains(t, e.store.matches, stale.ID)

	groups, err := e.phases.Groups(context.Background(), groupPhaseID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []int{1, 2, 3}, groups[0].TeamIDs)
	assert.Equal(t, []int{4, 5}, groups[1].TeamIDs)
}

func TestRegenerateGroupFixtures_TwoLegs(t *testing.T) {
	e := fixtureEnv(t)

	created, err := e.fixtures.RegenerateGroupFixtures(context.Background(), groupPhaseID, GroupFixturesInput{
		Groups: [][]int{{1, 2, 3}},
		Legs:   2,
	})
	require.NoError(t, err)
	require.Len(t, created, 6)
	assert.Equal(t, brackets.MatchPair{HomeTeamID: 2, AwayTeamID: 1}, pairsOf(created)[3])
	assert.Equal(t, fixedNow, created[0].ScheduledAt)
}

func TestRegenerateGroupFixtures_Errors(t *testing.T) {
	tests := []struct {
		name    string
		phaseID int
		groups  [][]int
		wantErr error
	}{
		{"elimination phase", knockoutID, [][]int{{1, 2}}, ErrPhaseTypeMismatch},
		{"team outside pool", groupPhaseID, [][]int{{1, 9}}, ErrTeamNotInPool},
		{"team in two groups", groupPhaseID, [][]int{{1, 2}, {2, 3}}, brackets.ErrTeamInManyGroups},
		{"group of one", groupPhaseID, [][]int{{1, 2}, {3}}, brackets.ErrGroupTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fixtureEnv(t)
			_, err := e.fixtures.RegenerateGroupFixtures(context.Background(), tt.phaseID, GroupFixturesInput{Groups: tt.groups})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.store.ops)
		})
	}
}

func TestRegenerateGroupFixtures_ClosedCompetition(t *testing.T) {
	e := fixtureEnv(t)
	e.store.competitions[competitionID].Status = models.CompetitionStatusClosed

	_, err := e.fixtures.RegenerateGroupFixtures(context.Background(), groupPhaseID, GroupFixturesInput{Groups: [][]int{{1, 2}}})
	assert.ErrorIs(t, err, ErrCompetitionClosed)
}
