package brackets

import "errors"

var (
	ErrInsufficientPool   = errors.New("not enough ranked teams to fill the bracket")
	ErrInvalidBracketSize = errors.New("bracket size must be a positive even number")
	ErrDegenerateSet      = errors.New("match has no sole winner")
	ErrSlotOutOfRange     = errors.New("slot index is out of range")
	ErrInvalidTransition  = errors.New("invalid bracket draft transition")
	ErrRoundIncomplete    = errors.New("round still has unfinished matches")
	ErrGroupTooSmall      = errors.New("group needs at least two teams")
	ErrTeamInManyGroups   = errors.New("team is assigned to more than one group")
	ErrInvalidLegs        = errors.New("number of legs must be 1 or 2")
)
