package brackets

// EmptySlot marks a bracket position or roster entry with no team.
const EmptySlot = 0

type MatchPair struct {
	HomeTeamID int `json:"home_team_id"`
	AwayTeamID int `json:"away_team_id"`
}

type GenerateParams struct {
	// Groups holds one roster per group (round robin).
	Groups [][]int
	// Slots is the ordered bracket (single elimination).
	Slots []int
	// Legs is 1 for a single round robin, 2 for home and away.
	Legs int
}

type FixtureGenerator interface {
	Generate(params GenerateParams) ([]MatchPair, error)

	GetName() string
}
