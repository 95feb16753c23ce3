package brackets

import (
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/Dosada05/league-admin/models"
)

// Group is a set of teams that played each other, directly or through a
// chain of opponents, inside one phase.
type Group struct {
	Label   string `json:"label"`
	TeamIDs []int  `json:"team_ids"`
}

// DetectGroups partitions the teams of matches into the connected
// components of the "played each other" graph. Groups are labelled in the
// order their first team appears in matches, and list their teams in
// first-appearance order too.
func DetectGroups(matches []models.Match) []Group {
	g := graph.New(graph.IntHash)
	seen := make([]int, 0)
	position := make(map[int]int)

	for _, m := range matches {
		if m.HomeTeamID == EmptySlot || m.AwayTeamID == EmptySlot || m.HomeTeamID == m.AwayTeamID {
			continue
		}
		for _, id := range [2]int{m.HomeTeamID, m.AwayTeamID} {
			if _, ok := position[id]; ok {
				continue
			}
			position[id] = len(seen)
			seen = append(seen, id)
			_ = g.AddVertex(id)
		}
		// Rematches already have their edge.
		_ = g.AddEdge(m.HomeTeamID, m.AwayTeamID)
	}

	groups := make([]Group, 0)
	assigned := make(map[int]bool, len(seen))

	for _, start := range seen {
		if assigned[start] {
			continue
		}

		members := make([]int, 0)
		_ = graph.BFS(g, start, func(id int) bool {
			assigned[id] = true
			members = append(members, id)
			return false
		})
		sort.Slice(members, func(i, j int) bool {
			return position[members[i]] < position[members[j]]
		})

		groups = append(groups, Group{Label: GroupLabel(len(groups)), TeamIDs: members})
	}

	return groups
}

// GroupLabel names the i-th group: "GROUP A" ... "GROUP Z", "GROUP AA", ...
func GroupLabel(i int) string {
	return "GROUP " + columnLetters(i)
}

func columnLetters(i int) string {
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
