package brackets

type DraftState string

const (
	DraftCountEntry     DraftState = "count_entry"
	DraftSlotAssignment DraftState = "slot_assignment"
	DraftCommitted      DraftState = "committed"
	DraftCancelled      DraftState = "cancelled"
)

// BracketDraft walks an elimination bracket from choosing its size,
// through slot assignment, to a committed list of pairs.
type BracketDraft struct {
	state DraftState
	board *SlotBoard
}

func NewBracketDraft() *BracketDraft {
	return &BracketDraft{state: DraftCountEntry}
}

func (d *BracketDraft) State() DraftState {
	return d.state
}

func (d *BracketDraft) Begin(size int) (*SlotBoard, error) {
	if d.state != DraftCountEntry {
		return nil, ErrInvalidTransition
	}
	board, err := NewSlotBoard(size)
	if err != nil {
		return nil, err
	}
	d.board = board
	d.state = DraftSlotAssignment
	return board, nil
}

func (d *BracketDraft) Board() (*SlotBoard, error) {
	if d.state != DraftSlotAssignment {
		return nil, ErrInvalidTransition
	}
	return d.board, nil
}

// Back returns to size selection and drops the current board.
func (d *BracketDraft) Back() error {
	if d.state != DraftSlotAssignment {
		return ErrInvalidTransition
	}
	d.board = nil
	d.state = DraftCountEntry
	return nil
}

func (d *BracketDraft) Commit() ([]MatchPair, error) {
	if d.state != DraftSlotAssignment {
		return nil, ErrInvalidTransition
	}
	pairs := d.board.Pairs()
	d.state = DraftCommitted
	return pairs, nil
}

func (d *BracketDraft) Cancel() error {
	if d.state != DraftCountEntry && d.state != DraftSlotAssignment {
		return ErrInvalidTransition
	}
	d.board = nil
	d.state = DraftCancelled
	return nil
}
