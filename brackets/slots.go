package brackets

import "math/rand"

// SlotBoard holds the ordered positions of an elimination bracket before it
// is committed. A team occupies at most one slot.
type SlotBoard struct {
	slots []int
}

func NewSlotBoard(size int) (*SlotBoard, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &SlotBoard{slots: make([]int, size)}, nil
}

func (b *SlotBoard) Size() int {
	return len(b.slots)
}

func (b *SlotBoard) Clear() {
	for i := range b.slots {
		b.slots[i] = EmptySlot
	}
}

// FillRandom shuffles a copy of pool and deals it into the slots from the
// top. Slots left over when the pool is smaller than the board stay empty.
func (b *SlotBoard) FillRandom(pool []int, rng *rand.Rand) {
	deck := compact(pool)
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	if len(deck) > len(b.slots) {
		deck = deck[:len(b.slots)]
	}

	b.Clear()
	copy(b.slots, deck)
}

// FillRanked seeds the board best against worst: slot 0 gets the best
// team, slot 1 the worst of the top Size(), slot 2 the second best and so
// on. ranked must be ordered best first.
func (b *SlotBoard) FillRanked(ranked []int) error {
	seeds := compact(ranked)
	if len(seeds) < len(b.slots) {
		return ErrInsufficientPool
	}
	seeds = seeds[:len(b.slots)]

	lo, hi := 0, len(seeds)-1
	for i := range b.slots {
		if i%2 == 0 {
			b.slots[i] = seeds[lo]
			lo++
		} else {
			b.slots[i] = seeds[hi]
			hi--
		}
	}
	return nil
}

// Assign puts team into slot, moving it out of any slot it held before.
// Assigning EmptySlot vacates the slot.
func (b *SlotBoard) Assign(slot, team int) error {
	if slot < 0 || slot >= len(b.slots) {
		return ErrSlotOutOfRange
	}
	if team != EmptySlot {
		for i, id := range b.slots {
			if id == team {
				b.slots[i] = EmptySlot
			}
		}
	}
	b.slots[slot] = team
	return nil
}

func (b *SlotBoard) Vacate(slot int) error {
	return b.Assign(slot, EmptySlot)
}

func (b *SlotBoard) Slots() []int {
	out := make([]int, len(b.slots))
	copy(out, b.slots)
	return out
}

func (b *SlotBoard) Pairs() []MatchPair {
	return EliminationPairs(b.slots)
}

func (b *SlotBoard) Filled() int {
	n := 0
	for _, id := range b.slots {
		if id != EmptySlot {
			n++
		}
	}
	return n
}
