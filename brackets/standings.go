package brackets

import (
	"sort"

	"github.com/Dosada05/league-admin/models"
)

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// ComputeStandings builds the table of the given teams from their finished
// matches. Matches that involve a team outside teams are ignored. Ties on
// points, wins, goal difference and goals for keep the order of teams.
func ComputeStandings(teams []int, matches []models.Match) []models.Standing {
	order := make([]int, 0, len(teams))
	table := make(map[int]*models.Standing, len(teams))
	for _, id := range teams {
		if _, ok := table[id]; ok {
			continue
		}
		table[id] = &models.Standing{TeamID: id}
		order = append(order, id)
	}

	for i := range matches {
		m := &matches[i]
		if !m.IsFinished() || m.HomeTeamID == m.AwayTeamID {
			continue
		}
		home, okHome := table[m.HomeTeamID]
		away, okAway := table[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeScore
		home.GoalsAgainst += m.AwayScore
		away.GoalsFor += m.AwayScore
		away.GoalsAgainst += m.HomeScore

		switch {
		case m.HomeScore > m.AwayScore:
			home.Points += PointsForWin
			home.Wins++
			away.Losses++
		case m.HomeScore < m.AwayScore:
			away.Points += PointsForWin
			away.Wins++
			home.Losses++
		default:
			home.Points += PointsForDraw
			away.Points += PointsForDraw
			home.Draws++
			away.Draws++
		}
	}

	standings := make([]models.Standing, 0, len(order))
	for _, id := range order {
		s := table[id]
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		standings = append(standings, *s)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return ranksAbove(standings[i], standings[j])
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Rank returns team ids from best to worst.
func Rank(teams []int, matches []models.Match) []int {
	standings := ComputeStandings(teams, matches)
	ranked := make([]int, len(standings))
	for i, s := range standings {
		ranked[i] = s.TeamID
	}
	return ranked
}

func ranksAbove(a, b models.Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}
