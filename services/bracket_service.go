package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/realtime"
	"github.com/Dosada05/league-admin/repositories"
)

type SeedingMode string

const (
	SeedingManual SeedingMode = "manual"
	SeedingRandom SeedingMode = "random"
	SeedingRanked SeedingMode = "ranked"
)

func (m SeedingMode) IsValid() bool {
	return m == SeedingManual || m == SeedingRandom || m == SeedingRanked
}

type BracketService interface {
	// Preview fills a bracket without writing anything.
	Preview(ctx context.Context, competitionID int, input BracketInput) (*BracketPreview, error)
	// Commit replaces the matches of an elimination phase with the pairs of
	// the filled bracket.
	Commit(ctx context.Context, phaseID int, input BracketInput) ([]models.Match, error)
	// AdvanceRound seeds the next elimination phase with the winners of a
	// finished one, keeping bracket order.
	AdvanceRound(ctx context.Context, fromPhaseID, toPhaseID int, scheduledAt *time.Time) ([]models.Match, error)
}

type BracketInput struct {
	Size int         `json:"size" validate:"required,gt=0"`
	Mode SeedingMode `json:"mode" validate:"required"`
	// Slots is the manual layout; EmptySlot (0) leaves a position open.
	Slots []int `json:"slots,omitempty"`
	// Seed makes a random draw reproducible.
	Seed *int64 `json:"seed,omitempty"`
	// SourcePhaseID limits ranked seeding to the results of one phase.
	SourcePhaseID *int       `json:"source_phase_id,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
}

type BracketPreview struct {
	Size  int                  `json:"size"`
	Slots []int                `json:"slots"`
	Pairs []brackets.MatchPair `json:"pairs"`
}

type bracketService struct {
	phaseRepo       repositories.PhaseRepository
	competitionRepo repositories.CompetitionRepository
	matchRepo       repositories.MatchRepository
	guard           *PhaseGuard
	generator       brackets.FixtureGenerator
	writer          *fixtureWriter
	logger          *slog.Logger
	now             func() time.Time
}

func NewBracketService(
	phaseRepo repositories.PhaseRepository,
	competitionRepo repositories.CompetitionRepository,
	matchRepo repositories.MatchRepository,
	tx repositories.Transactor,
	guard *PhaseGuard,
	broadcaster realtime.Broadcaster,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		phaseRepo:       phaseRepo,
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		guard:           guard,
		generator:       brackets.NewSingleEliminationGenerator(),
		writer: &fixtureWriter{
			matchRepo:   matchRepo,
			tx:          tx,
			broadcaster: broadcaster,
			logger:      logger,
		},
		logger: logger,
		now:    time.Now,
	}
}

func (s *bracketService) Preview(ctx context.Context, competitionID int, input BracketInput) (*BracketPreview, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}

	draft, err := s.fillDraft(ctx, competitionID, input)
	if err != nil {
		return nil, err
	}
	board, err := draft.Board()
	if err != nil {
		return nil, err
	}
	preview := &BracketPreview{Size: board.Size(), Slots: board.Slots(), Pairs: board.Pairs()}
	_ = draft.Cancel()
	return preview, nil
}

func (s *bracketService) Commit(ctx context.Context, phaseID int, input BracketInput) ([]models.Match, error) {
	phase, err := loadWritablePhase(ctx, s.phaseRepo, s.competitionRepo, phaseID, models.PhaseTypeElimination)
	if err != nil {
		return nil, err
	}

	draft, err := s.fillDraft(ctx, phase.CompetitionID, input)
	if err != nil {
		return nil, err
	}
	board, err := draft.Board()
	if err != nil {
		return nil, err
	}
	slots := board.Slots()

	if _, err := draft.Commit(); err != nil {
		return nil, err
	}
	pairs, err := s.generator.Generate(brackets.GenerateParams{Slots: slots})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.generator.GetName(), err)
	}
	if len(pairs) == 0 {
		return nil, ErrEmptyBracket
	}

	release, err := s.guard.TryAcquire(phaseID)
	if err != nil {
		return nil, err
	}
	defer release()

	s.logger.InfoContext(ctx, "committing bracket",
		slog.Int("phase_id", phaseID),
		slog.String("mode", string(input.Mode)),
		slog.Int("size", input.Size),
		slog.Int("pairs", len(pairs)),
	)
	return s.writer.replace(ctx, phase, pairs, scheduledOrNow(input.ScheduledAt, s.now))
}

func (s *bracketService) AdvanceRound(ctx context.Context, fromPhaseID, toPhaseID int, scheduledAt *time.Time) ([]models.Match, error) {
	if fromPhaseID == toPhaseID {
		return nil, fmt.Errorf("%w: a phase cannot feed itself", ErrValidationFailed)
	}
	from, err := s.phaseRepo.GetByID(ctx, fromPhaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase %d: %w", fromPhaseID, err)
	}
	if from.Type != models.PhaseTypeElimination {
		return nil, fmt.Errorf("%w: phase %d is '%s'", ErrPhaseTypeMismatch, fromPhaseID, from.Type)
	}
	to, err := loadWritablePhase(ctx, s.phaseRepo, s.competitionRepo, toPhaseID, models.PhaseTypeElimination)
	if err != nil {
		return nil, err
	}
	if to.CompetitionID != from.CompetitionID {
		return nil, ErrPhaseCompetitionMismatch
	}

	release, err := s.guard.TryAcquire(fromPhaseID, toPhaseID)
	if err != nil {
		return nil, err
	}
	defer release()

	round, err := s.matchRepo.ListByPhase(ctx, nil, fromPhaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of phase %d: %w", fromPhaseID, err)
	}
	if len(round) == 0 {
		return nil, ErrPhaseHasNoMatches
	}
	winners, err := brackets.AdvanceWinners(round)
	if err != nil {
		return nil, err
	}

	size := len(winners) + len(winners)%2
	draft := brackets.NewBracketDraft()
	board, err := draft.Begin(size)
	if err != nil {
		return nil, err
	}
	for i, id := range winners {
		if err := board.Assign(i, id); err != nil {
			return nil, err
		}
	}
	pairs, err := draft.Commit()
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrEmptyBracket
	}

	return s.writer.replace(ctx, to, pairs, scheduledOrNow(scheduledAt, s.now))
}

// fillDraft opens a draft of the requested size and fills its board
// according to the seeding mode. The draft is left in slot assignment.
func (s *bracketService) fillDraft(ctx context.Context, competitionID int, input BracketInput) (*brackets.BracketDraft, error) {
	if !input.Mode.IsValid() {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidSeedingMode, input.Mode)
	}

	pool, matches, err := s.snapshot(ctx, competitionID, input)
	if err != nil {
		return nil, err
	}

	draft := brackets.NewBracketDraft()
	board, err := draft.Begin(input.Size)
	if err != nil {
		return nil, err
	}

	switch input.Mode {
	case SeedingManual:
		if err := assignManual(board, input.Slots, teamSet(pool)); err != nil {
			return nil, err
		}
	case SeedingRandom:
		seed := s.now().UnixNano()
		if input.Seed != nil {
			seed = *input.Seed
		}
		board.FillRandom(teamIDs(pool), rand.New(rand.NewSource(seed)))
	case SeedingRanked:
		ranked := brackets.Rank(teamIDs(pool), matches)
		if err := board.FillRanked(ranked); err != nil {
			return nil, fmt.Errorf("%d teams ranked for %d slots: %w", len(ranked), input.Size, err)
		}
	}
	return draft, nil
}

// snapshot loads the eligible pool and, for ranked seeding, the results it
// is ranked on.
func (s *bracketService) snapshot(ctx context.Context, competitionID int, input BracketInput) ([]models.Team, []models.Match, error) {
	var (
		pool    []models.Team
		matches []models.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.competitionRepo.ListTeams(gctx, competitionID)
		if err != nil {
			return fmt.Errorf("failed to list teams of competition %d: %w", competitionID, err)
		}
		pool = teams
		return nil
	})
	if input.Mode == SeedingRanked {
		g.Go(func() error {
			var err error
			if input.SourcePhaseID != nil {
				matches, err = s.phaseResults(gctx, competitionID, *input.SourcePhaseID)
			} else {
				matches, err = s.matchRepo.ListByCompetition(gctx, competitionID)
			}
			if err != nil {
				return fmt.Errorf("failed to load results for ranking: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pool, matches, nil
}

func (s *bracketService) phaseResults(ctx context.Context, competitionID, phaseID int) ([]models.Match, error) {
	phase, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	if phase.CompetitionID != competitionID {
		return nil, ErrPhaseCompetitionMismatch
	}
	return s.matchRepo.ListByPhase(ctx, nil, phaseID)
}

func assignManual(board *brackets.SlotBoard, slots []int, eligible map[int]bool) error {
	if len(slots) > board.Size() {
		return fmt.Errorf("%w: %d slots for a bracket of %d", ErrTooManySlots, len(slots), board.Size())
	}
	placed := make(map[int]bool, len(slots))
	for i, id := range slots {
		if id == brackets.EmptySlot {
			continue
		}
		if !eligible[id] {
			return fmt.Errorf("%w: team %d", ErrTeamNotInPool, id)
		}
		if placed[id] {
			return fmt.Errorf("%w: team %d", ErrDuplicateSlotTeam, id)
		}
		placed[id] = true
		if err := board.Assign(i, id); err != nil {
			return err
		}
	}
	return nil
}
