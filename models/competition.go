package models

import "time"

// CompetitionStatus mirrors the competition_status CHECK constraint.
type CompetitionStatus string

const (
	CompetitionStatusScheduled CompetitionStatus = "scheduled"
	CompetitionStatusActive    CompetitionStatus = "active"
	CompetitionStatusClosed    CompetitionStatus = "closed"
)

func (s CompetitionStatus) IsValid() bool {
	switch s {
	case CompetitionStatusScheduled, CompetitionStatusActive, CompetitionStatusClosed:
		return true
	}
	return false
}

type Competition struct {
	ID           int               `json:"id" db:"id"`
	Name         string            `json:"name" db:"name"`
	Status       CompetitionStatus `json:"status" db:"status"`
	CurrentPhase *string           `json:"current_phase,omitempty" db:"current_phase"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`

	Teams  []Team  `json:"teams,omitempty" db:"-"`
	Phases []Phase `json:"phases,omitempty" db:"-"`
}
