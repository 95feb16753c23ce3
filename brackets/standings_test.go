package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/models"
)

const (
	teamA = 1
	teamB = 2
	teamC = 3
	teamD = 4
	teamE = 5
)

func finished(home, away, homeScore, awayScore int) models.Match {
	return models.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Status:     models.MatchStatusFinished,
	}
}

func TestComputeStandings_WinAndDraw(t *testing.T) {
	matches := []models.Match{
		finished(teamA, teamB, 2, 0),
		finished(teamA, teamC, 1, 1),
	}

	standings := ComputeStandings([]int{teamA, teamB, teamC}, matches)
	require.Len(t, standings, 3)

	a, c, b := standings[0], standings[1], standings[2]
	assert.Equal(t, teamA, a.TeamID)
	assert.Equal(t, 4, a.Points)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 2, a.GoalDifference)
	assert.Equal(t, 3, a.GoalsFor)

	assert.Equal(t, teamC, c.TeamID)
	assert.Equal(t, 1, c.Points)
	assert.Equal(t, 0, c.Wins)
	assert.Equal(t, 0, c.GoalDifference)
	assert.Equal(t, 1, c.GoalsFor)

	assert.Equal(t, teamB, b.TeamID)
	assert.Equal(t, 0, b.Points)
	assert.Equal(t, -2, b.GoalDifference)
	assert.Equal(t, 0, b.GoalsFor)
	assert.Equal(t, 1, b.Losses)

	assert.Equal(t, []int{1, 2, 3}, []int{a.Rank, c.Rank, b.Rank})
	assert.Equal(t, []int{teamA, teamC, teamB}, Rank([]int{teamA, teamB, teamC}, matches))
}

func TestRank_IgnoresUnfinishedAndForeignMatches(t *testing.T) {
	live := finished(teamB, teamA, 5, 0)
	live.Status = models.MatchStatusLive

	matches := []models.Match{
		live,
		finished(teamB, teamE, 9, 0),
		finished(teamA, teamB, 1, 0),
	}

	assert.Equal(t, []int{teamA, teamB}, Rank([]int{teamB, teamA}, matches))
}

func TestRank_TieBreakers(t *testing.T) {
	tests := []struct {
		name    string
		teams   []int
		matches []models.Match
		want    []int
	}{
		{
			name:  "wins break equal points",
			teams: []int{teamB, teamA, teamC, teamD, teamE},
			matches: []models.Match{
				// A: one win (3). B: three draws (3).
				finished(teamA, teamC, 1, 0),
				finished(teamB, teamC, 0, 0),
				finished(teamB, teamD, 0, 0),
				finished(teamB, teamE, 0, 0),
			},
			want: []int{teamA, teamB, teamD, teamE, teamC},
		},
		{
			name:  "goal difference breaks equal wins",
			teams: []int{teamA, teamB, teamC},
			matches: []models.Match{
				finished(teamA, teamC, 1, 0),
				finished(teamB, teamC, 3, 0),
			},
			want: []int{teamB, teamA, teamC},
		},
		{
			name:  "goals for breaks equal difference",
			teams: []int{teamA, teamB, teamC},
			matches: []models.Match{
				finished(teamA, teamC, 1, 0),
				finished(teamB, teamC, 3, 2),
			},
			want: []int{teamB, teamA, teamC},
		},
		{
			name:    "full tie keeps input order",
			teams:   []int{teamC, teamA, teamB},
			matches: nil,
			want:    []int{teamC, teamA, teamB},
		},
		{
			name:    "duplicate ids collapse",
			teams:   []int{teamA, teamB, teamA},
			matches: nil,
			want:    []int{teamA, teamB},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.teams, tt.matches))
		})
	}
}

func TestRank_StableUnderEqualRecords(t *testing.T) {
	matches := []models.Match{
		finished(teamA, teamB, 1, 1),
		finished(teamC, teamD, 1, 1),
	}

	assert.Equal(t, []int{teamD, teamC, teamB, teamA}, Rank([]int{teamD, teamC, teamB, teamA}, matches))
	assert.Equal(t, []int{teamA, teamB, teamC, teamD}, Rank([]int{teamA, teamB, teamC, teamD}, matches))
}
