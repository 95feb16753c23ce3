package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusLive, MatchStatusFinished:
		return true
	}
	return false
}

// Match is a single game between two clubs. PhaseID is nil for matches
// that were scheduled outside of any phase.
type Match struct {
	ID            int         `json:"id" db:"id"`
	CompetitionID int         `json:"competition_id" db:"competition_id"`
	PhaseID       *int        `json:"phase_id,omitempty" db:"phase_id"`
	HomeTeamID    int         `json:"home_team_id" db:"home_team_id"`
	AwayTeamID    int         `json:"away_team_id" db:"away_team_id"`
	HomeScore     int         `json:"home_score" db:"home_score"`
	AwayScore     int         `json:"away_score" db:"away_score"`
	Status        MatchStatus `json:"status" db:"status"`
	ScheduledAt   time.Time   `json:"scheduled_at" db:"scheduled_at"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`

	HomeTeam *Team `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team `json:"away_team,omitempty" db:"-"`
}

func (m *Match) IsFinished() bool {
	return m.Status == MatchStatusFinished
}
