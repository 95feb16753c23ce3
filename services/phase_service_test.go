package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
)

func TestPhaseService_CreateAndList(t *testing.T) {
	e := bracketEnv(t)

	phase, err := e.phases.CreatePhase(context.Background(), competitionID, CreatePhaseInput{Name: "  Semi   finals ", Type: models.PhaseTypeElimination})
	require.NoError(t, err)
	assert.Equal(t, "Semi finals", phase.Name)

	_, err = e.phases.CreatePhase(context.Background(), competitionID, CreatePhaseInput{Name: "Odd", Type: "swiss"})
	assert.ErrorIs(t, err, ErrInvalidPhaseType)

	_, err = e.phases.CreatePhase(context.Background(), competitionID, CreatePhaseInput{Name: " ", Type: models.PhaseTypeGroupStage})
	assert.ErrorIs(t, err, ErrPhaseNameRequired)

	_, err = e.phases.CreatePhase(context.Background(), 42, CreatePhaseInput{Name: "X", Type: models.PhaseTypeGroupStage})
	assert.ErrorIs(t, err, repositories.ErrCompetitionNotFound)

	phases, err := e.phases.ListPhases(context.Background(), competitionID)
	require.NoError(t, err)
	assert.Len(t, phases, 4)
}

func TestPhaseService_GroupsWithTables(t *testing.T) {
	e := bracketEnv(t)
	e.store.addMatch(finishedIn(groupPhaseID, 3, 4, 2, 0))
	e.store.addMatch(finishedIn(groupPhaseID, 1, 2, 0, 1))
	e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 4, AwayTeamID: 5})

	groups, err := e.phases.Groups(context.Background(), groupPhaseID)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "GROUP A", groups[0].Label)
	assert.Equal(t, []int{3, 4, 5}, groups[0].TeamIDs)
	require.Len(t, groups[0].Standings, 3)
	assert.Equal(t, 3, groups[0].Standings[0].TeamID)

	assert.Equal(t, "GROUP B", groups[1].Label)
	assert.Equal(t, []int{1, 2}, groups[1].TeamIDs)
	assert.Equal(t, 2, groups[1].Standings[0].TeamID)
}

func TestPhaseService_GroupsFollowPairingChanges(t *testing.T) {
	e := bracketEnv(t)
	e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 1, AwayTeamID: 2})
	e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 3, AwayTeamID: 4})

	groups, err := e.phases.Groups(context.Background(), groupPhaseID)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 2, AwayTeamID: 3})

	groups, err = e.phases.Groups(context.Background(), groupPhaseID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{1, 2, 3, 4}, groups[0].TeamIDs)
}

func TestPairingFingerprint(t *testing.T) {
	a := []models.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2}}
	scored := []models.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 4, Status: models.MatchStatusFinished}}
	swapped := []models.Match{{ID: 1, HomeTeamID: 2, AwayTeamID: 1}}

	assert.Equal(t, pairingFingerprint(a), pairingFingerprint(scored))
	assert.NotEqual(t, pairingFingerprint(a), pairingFingerprint(swapped))
	assert.NotEqual(t, pairingFingerprint(a), pairingFingerprint(nil))
}

func TestPhaseService_DeleteRemovesMatchesFirst(t *testing.T) {
	e := bracketEnv(t)
	e.store.addMatch(models.Match{CompetitionID: competitionID, PhaseID: intPtr(groupPhaseID), HomeTeamID: 1, AwayTeamID: 2})
	ghost := e.store.addMatch(models.Match{CompetitionID: competitionID, HomeTeamID: 3, AwayTeamID: 4})

	require.NoError(t, e.phases.DeletePhase(context.Background(), groupPhaseID))

	assert.Equal(t, []string{"delete matches of phase 10", "delete phase 10"}, e.store.ops)
	assert.Equal(t, 1, e.tx.began)
	assert.Empty(t, e.store.phaseMatches(groupPhaseID))
	assert.Contains(t, e.store.matches, ghost.ID, "matches outside the phase stay")

	err := e.phases.DeletePhase(context.Background(), groupPhaseID)
	assert.ErrorIs(t, err, repositories.ErrPhaseNotFound)
}

func TestPhaseService_DeleteBusy(t *testing.T) {
	e := bracketEnv(t)
	release, err := e.guard.TryAcquire(groupPhaseID)
	require.NoError(t, err)
	defer release()

	assert.ErrorIs(t, e.phases.DeletePhase(context.Background(), groupPhaseID), ErrPhaseBusy)
	assert.Contains(t, e.store.phases, groupPhaseID)
}
