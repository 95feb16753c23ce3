package brackets

import (
	"fmt"

	"github.com/Dosada05/league-admin/models"
)

// Winner returns the team that won a finished match.
func Winner(m models.Match) (int, error) {
	if !m.IsFinished() {
		return EmptySlot, fmt.Errorf("match %d: %w", m.ID, ErrRoundIncomplete)
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeTeamID, nil
	case m.AwayScore > m.HomeScore:
		return m.AwayTeamID, nil
	}
	return EmptySlot, fmt.Errorf("match %d ended %d-%d: %w", m.ID, m.HomeScore, m.AwayScore, ErrDegenerateSet)
}

// AdvanceWinners lists the winners of an elimination round in bracket
// order, ready to be dealt into the next round's slots.
func AdvanceWinners(matches []models.Match) ([]int, error) {
	winners := make([]int, 0, len(matches))
	for _, m := range matches {
		w, err := Winner(m)
		if err != nil {
			return nil, err
		}
		winners = append(winners, w)
	}
	return winners, nil
}
