package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/realtime"
	"github.com/Dosada05/league-admin/repositories"
)

type MatchService interface {
	CreateMatch(ctx context.Context, competitionID int, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error)
	ListByPhase(ctx context.Context, phaseID int) ([]models.Match, error)
	StartMatch(ctx context.Context, id int) (*models.Match, error)
	UpdateScore(ctx context.Context, id int, input ScoreInput) (*models.Match, error)
	FinishMatch(ctx context.Context, id int) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type CreateMatchInput struct {
	// PhaseID is optional; a match without a phase still counts for the
	// competition table.
	PhaseID     *int       `json:"phase_id,omitempty"`
	HomeTeamID  int        `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID  int        `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type ScoreInput struct {
	HomeScore int `json:"home_score" validate:"gte=0"`
	AwayScore int `json:"away_score" validate:"gte=0"`
}

type matchService struct {
	matchRepo       repositories.MatchRepository
	competitionRepo repositories.CompetitionRepository
	phaseRepo       repositories.PhaseRepository
	guard           *PhaseGuard
	broadcaster     realtime.Broadcaster
	logger          *slog.Logger
	now             func() time.Time
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	competitionRepo repositories.CompetitionRepository,
	phaseRepo repositories.PhaseRepository,
	guard *PhaseGuard,
	broadcaster realtime.Broadcaster,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:       matchRepo,
		competitionRepo: competitionRepo,
		phaseRepo:       phaseRepo,
		guard:           guard,
		broadcaster:     broadcaster,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, competitionID int, input CreateMatchInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrSameTeams
	}

	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	if competition.Status == models.CompetitionStatusClosed {
		return nil, ErrCompetitionClosed
	}

	pool, err := s.competitionRepo.ListTeams(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of competition %d: %w", competitionID, err)
	}
	eligible := teamSet(pool)
	for _, id := range []int{input.HomeTeamID, input.AwayTeamID} {
		if !eligible[id] {
			return nil, fmt.Errorf("%w: team %d", ErrTeamNotInPool, id)
		}
	}

	if input.PhaseID != nil {
		phase, err := s.phaseRepo.GetByID(ctx, *input.PhaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to get phase %d: %w", *input.PhaseID, err)
		}
		if phase.CompetitionID != competitionID {
			return nil, ErrPhaseCompetitionMismatch
		}
		release, err := s.guard.TryAcquire(phase.ID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	match := &models.Match{
		CompetitionID: competitionID,
		PhaseID:       input.PhaseID,
		HomeTeamID:    input.HomeTeamID,
		AwayTeamID:    input.AwayTeamID,
		Status:        models.MatchStatusScheduled,
		ScheduledAt:   scheduledOrNow(input.ScheduledAt, s.now),
	}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.publish(match, realtime.MessageMatchUpdated)
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) ListByPhase(ctx context.Context, phaseID int) ([]models.Match, error) {
	if _, err := s.phaseRepo.GetByID(ctx, phaseID); err != nil {
		return nil, fmt.Errorf("failed to get phase %d: %w", phaseID, err)
	}
	matches, err := s.matchRepo.ListByPhase(ctx, nil, phaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) StartMatch(ctx context.Context, id int) (*models.Match, error) {
	return s.transition(ctx, id, models.MatchStatusLive)
}

func (s *matchService) FinishMatch(ctx context.Context, id int) (*models.Match, error) {
	return s.transition(ctx, id, models.MatchStatusFinished)
}

func (s *matchService) transition(ctx context.Context, id int, next models.MatchStatus) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	if !isValidMatchTransition(match.Status, next) {
		return nil, fmt.Errorf("%w: from '%s' to '%s'", ErrInvalidMatchTransition, match.Status, next)
	}

	match.Status = next
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "match status changed", slog.Int("match_id", id), slog.String("status", string(next)))
	s.publish(match, realtime.MessageMatchUpdated)
	return match, nil
}

func (s *matchService) UpdateScore(ctx context.Context, id int, input ScoreInput) (*models.Match, error) {
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return nil, ErrNegativeScore
	}

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	if match.Status != models.MatchStatusLive {
		return nil, ErrMatchNotLive
	}

	match.HomeScore = input.HomeScore
	match.AwayScore = input.AwayScore
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}

	s.publish(match, realtime.MessageMatchUpdated)
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get match %d: %w", id, err)
	}
	if match.PhaseID != nil {
		release, err := s.guard.TryAcquire(*match.PhaseID)
		if err != nil {
			return err
		}
		defer release()
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	s.publish(match, realtime.MessageMatchDeleted)
	return nil
}

func (s *matchService) publish(match *models.Match, messageType string) {
	if s.broadcaster == nil {
		return
	}
	room := realtime.CompetitionRoom(match.CompetitionID)
	s.broadcaster.BroadcastToRoom(room, realtime.Message{Type: messageType, Payload: match, RoomID: room})
}
