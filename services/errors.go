package services

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")

	ErrTeamNameRequired         = errors.New("team name is required")
	ErrCompetitionNameRequired  = errors.New("competition name is required")
	ErrPhaseNameRequired        = errors.New("phase name is required")
	ErrInvalidPhaseType         = errors.New("invalid phase type")
	ErrPhaseTypeMismatch        = errors.New("operation is not available for this phase type")
	ErrPhaseCompetitionMismatch = errors.New("phase belongs to another competition")

	ErrInvalidCompetitionStatus     = errors.New("invalid competition status provided")
	ErrInvalidCompetitionTransition = errors.New("invalid competition status transition")
	ErrCompetitionClosed            = errors.New("competition is closed")
	ErrTeamNotInPool                = errors.New("team is not bound to the competition")
	ErrTeamHasMatches               = errors.New("team already has matches in this competition")

	ErrSameTeams              = errors.New("home and away team must differ")
	ErrNegativeScore          = errors.New("scores must not be negative")
	ErrMatchNotLive           = errors.New("score can only change while the match is live")
	ErrInvalidMatchTransition = errors.New("invalid match status transition")

	ErrInvalidSeedingMode = errors.New("invalid seeding mode")
	ErrDuplicateSlotTeam  = errors.New("team appears in more than one slot")
	ErrTooManySlots       = errors.New("more slots given than the bracket size")
	ErrEmptyBracket       = errors.New("bracket produces no matches")
	ErrPhaseHasNoMatches  = errors.New("phase has no matches")

	ErrPhaseBusy = errors.New("another change to this phase is in progress")

	ErrLogoUploadDisabled = errors.New("logo uploads are not configured")
	ErrInvalidFileType    = errors.New("unsupported logo file type")

	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrConfirmationFailed = errors.New("confirmation secret was not accepted")
)
