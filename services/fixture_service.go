package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/realtime"
	"github.com/Dosada05/league-admin/repositories"
)

type FixtureService interface {
	// RegenerateGroupFixtures throws away every match of a group stage phase
	// and schedules a fresh round robin for each roster.
	RegenerateGroupFixtures(ctx context.Context, phaseID int, input GroupFixturesInput) ([]models.Match, error)
}

type GroupFixturesInput struct {
	Groups      [][]int    `json:"groups" validate:"required,min=1,dive,min=2"`
	Legs        int        `json:"legs" validate:"omitempty,oneof=1 2"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type fixtureService struct {
	phaseRepo       repositories.PhaseRepository
	competitionRepo repositories.CompetitionRepository
	guard           *PhaseGuard
	generator       brackets.FixtureGenerator
	writer          *fixtureWriter
	logger          *slog.Logger
	now             func() time.Time
}

func NewFixtureService(
	phaseRepo repositories.PhaseRepository,
	competitionRepo repositories.CompetitionRepository,
	matchRepo repositories.MatchRepository,
	tx repositories.Transactor,
	guard *PhaseGuard,
	broadcaster realtime.Broadcaster,
	logger *slog.Logger,
) FixtureService {
	return &fixtureService{
		phaseRepo:       phaseRepo,
		competitionRepo: competitionRepo,
		guard:           guard,
		generator:       brackets.NewRoundRobinGenerator(),
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

func (s *fixtureService) RegenerateGroupFixtures(ctx context.Context, phaseID int, input GroupFixturesInput) ([]models.Match, error) {
	phase, err := loadWritablePhase(ctx, s.phaseRepo, s.competitionRepo, phaseID, models.PhaseTypeGroupStage)
	if err != nil {
		return nil, err
	}

	pool, err := s.competitionRepo.ListTeams(ctx, phase.CompetitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of competition %d: %w", phase.CompetitionID, err)
	}
	eligible := teamSet(pool)
	for _, roster := range input.Groups {
		for _, id := range roster {
			if id != brackets.EmptySlot && !eligible[id] {
				return nil, fmt.Errorf("%w: team %d", ErrTeamNotInPool, id)
			}
		}
	}

	pairs, err := s.generator.Generate(brackets.GenerateParams{Groups: input.Groups, Legs: input.Legs})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.generator.GetName(), err)
	}

	release, err := s.guard.TryAcquire(phaseID)
	if err != nil {
		return nil, err
	}
	defer release()

	s.logger.InfoContext(ctx, "regenerating group fixtures",
		slog.Int("phase_id", phaseID),
		slog.Int("groups", len(input.Groups)),
		slog.Int("pairs", len(pairs)),
	)
	return s.writer.replace(ctx, phase, pairs, scheduledOrNow(input.ScheduledAt, s.now))
}
