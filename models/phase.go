package models

import "time"

type PhaseType string

const (
	PhaseTypeGroupStage  PhaseType = "group_stage"
	PhaseTypeElimination PhaseType = "elimination"
)

func (t PhaseType) IsValid() bool {
	return t == PhaseTypeGroupStage || t == PhaseTypeElimination
}

// Phase belongs to exactly one competition. Groups of a group stage are
// not stored: they are derived from the phase's matches.
type Phase struct {
	ID            int       `json:"id" db:"id"`
	CompetitionID int       `json:"competition_id" db:"competition_id"`
	Name          string    `json:"name" db:"name"`
	Type          PhaseType `json:"type" db:"type"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
