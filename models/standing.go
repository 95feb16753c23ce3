package models

// Standing is computed from finished matches on every request and is
// never persisted.
type Standing struct {
	TeamID         int `json:"team_id"`
	Rank           int `json:"rank"`
	Played         int `json:"played"`
	Points         int `json:"points"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`

	Team *Team `json:"team,omitempty"`
}
