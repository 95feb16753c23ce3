package brackets

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() FixtureGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

func (g *SingleEliminationGenerator) Generate(params GenerateParams) ([]MatchPair, error) {
	if err := validateSize(len(params.Slots)); err != nil {
		return nil, err
	}
	return EliminationPairs(params.Slots), nil
}

// EliminationPairs pairs slot 2k with slot 2k+1 in bracket order. A pair
// with an empty slot produces no match, and a trailing odd slot is ignored.
func EliminationPairs(slots []int) []MatchPair {
	pairs := make([]MatchPair, 0, len(slots)/2)
	for i := 0; i+1 < len(slots); i += 2 {
		home, away := slots[i], slots[i+1]
		if home == EmptySlot || away == EmptySlot {
			continue
		}
		pairs = append(pairs, MatchPair{HomeTeamID: home, AwayTeamID: away})
	}
	return pairs
}

func validateSize(size int) error {
	if size <= 0 || size%2 != 0 {
		return ErrInvalidBracketSize
	}
	return nil
}
