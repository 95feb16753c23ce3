package brackets

import "fmt"

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate creates the fixtures of every group in params.Groups, group
// after group. Legs defaults to 1 when unset.
func (g *RoundRobinGenerator) Generate(params GenerateParams) ([]MatchPair, error) {
	legs := params.Legs
	if legs == 0 {
		legs = 1
	}
	if legs != 1 && legs != 2 {
		return nil, ErrInvalidLegs
	}

	owner := make(map[int]int)
	pairs := make([]MatchPair, 0)

	for gi, roster := range params.Groups {
		teams := compact(roster)
		if len(teams) < 2 {
			return nil, fmt.Errorf("RoundRobinGenerator: group %s has %d team(s): %w", GroupLabel(gi), len(teams), ErrGroupTooSmall)
		}
		for _, id := range teams {
			if prev, ok := owner[id]; ok && prev != gi {
				return nil, fmt.Errorf("RoundRobinGenerator: team %d in %s and %s: %w", id, GroupLabel(prev), GroupLabel(gi), ErrTeamInManyGroups)
			}
			owner[id] = gi
		}
		pairs = append(pairs, RoundRobinLegs(teams, legs)...)
	}

	return pairs, nil
}

// RoundRobin returns every unordered pair of the roster exactly once. The
// team that appears earlier in the roster plays at home.
func RoundRobin(teamIDs []int) []MatchPair {
	teams := compact(teamIDs)
	pairs := make([]MatchPair, 0, len(teams)*(len(teams)-1)/2)

	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			pairs = append(pairs, MatchPair{HomeTeamID: teams[i], AwayTeamID: teams[j]})
		}
	}
	return pairs
}

// RoundRobinLegs plays the round robin once or twice. The second leg
// repeats every first-leg pair with home and away swapped.
func RoundRobinLegs(teamIDs []int, legs int) []MatchPair {
	first := RoundRobin(teamIDs)
	if legs < 2 {
		return first
	}

	pairs := make([]MatchPair, 0, len(first)*2)
	pairs = append(pairs, first...)
	for _, p := range first {
		pairs = append(pairs, MatchPair{HomeTeamID: p.AwayTeamID, AwayTeamID: p.HomeTeamID})
	}
	return pairs
}

// compact drops empty entries and repeated ids, keeping first occurrences.
func compact(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id == EmptySlot {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
