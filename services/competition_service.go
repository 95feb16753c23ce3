package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/storage"
)

type CompetitionService interface {
	CreateCompetition(ctx context.Context, input CreateCompetitionInput) (*models.Competition, error)
	GetCompetitionByID(ctx context.Context, id int) (*models.Competition, error)
	ListCompetitions(ctx context.Context, filter repositories.ListCompetitionsFilter) ([]models.Competition, error)
	ListActiveCompetitions(ctx context.Context) ([]models.Competition, error)
	UpdateCompetition(ctx context.Context, id int, input UpdateCompetitionInput) (*models.Competition, error)
	DeleteCompetition(ctx context.Context, id int) error

	BindTeam(ctx context.Context, competitionID, teamID int) error
	UnbindTeam(ctx context.Context, competitionID, teamID int) error
	ListPool(ctx context.Context, competitionID int) ([]models.Team, error)
}

type CreateCompetitionInput struct {
	Name         string  `json:"name" validate:"required,max=160"`
	CurrentPhase *string `json:"current_phase,omitempty" validate:"omitempty,max=120"`
}

type UpdateCompetitionInput struct {
	Name         *string                   `json:"name,omitempty" validate:"omitempty,max=160"`
	Status       *models.CompetitionStatus `json:"status,omitempty"`
	CurrentPhase *string                   `json:"current_phase,omitempty" validate:"omitempty,max=120"`
}

type competitionService struct {
	competitionRepo repositories.CompetitionRepository
	phaseRepo       repositories.PhaseRepository
	matchRepo       repositories.MatchRepository
	teamRepo        repositories.TeamRepository
	tx              repositories.Transactor
	guard           *PhaseGuard
	uploader        storage.FileUploader
	logger          *slog.Logger
}

func NewCompetitionService(
	competitionRepo repositories.CompetitionRepository,
	phaseRepo repositories.PhaseRepository,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	tx repositories.Transactor,
	guard *PhaseGuard,
	uploader storage.FileUploader,
	logger *slog.Logger,
) CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		phaseRepo:       phaseRepo,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		tx:              tx,
		guard:           guard,
		uploader:        uploader,
		logger:          logger,
	}
}

func (s *competitionService) CreateCompetition(ctx context.Context, input CreateCompetitionInput) (*models.Competition, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, ErrCompetitionNameRequired
	}

	competition := &models.Competition{
		Name:         name,
		Status:       models.CompetitionStatusScheduled,
		CurrentPhase: input.CurrentPhase,
	}
	if err := s.competitionRepo.Create(ctx, competition); err != nil {
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}
	return competition, nil
}

func (s *competitionService) GetCompetitionByID(ctx context.Context, id int) (*models.Competition, error) {
	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", id, err)
	}

	teams, err := s.competitionRepo.ListTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of competition %d: %w", id, err)
	}
	phases, err := s.phaseRepo.ListByCompetition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases of competition %d: %w", id, err)
	}

	populateTeamLogoURLs(teams, s.uploader)
	competition.Teams = teams
	competition.Phases = phases
	return competition, nil
}

func (s *competitionService) ListCompetitions(ctx context.Context, filter repositories.ListCompetitionsFilter) ([]models.Competition, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidCompetitionStatus
	}
	competitions, err := s.competitionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (s *competitionService) ListActiveCompetitions(ctx context.Context) ([]models.Competition, error) {
	active := models.CompetitionStatusActive
	return s.ListCompetitions(ctx, repositories.ListCompetitionsFilter{Status: &active})
}

func (s *competitionService) UpdateCompetition(ctx context.Context, id int, input UpdateCompetitionInput) (*models.Competition, error) {
	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", id, err)
	}

	if input.Name != nil {
		name := normalizeName(*input.Name)
		if name == "" {
			return nil, ErrCompetitionNameRequired
		}
		competition.Name = name
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidCompetitionStatus
		}
		if !isValidCompetitionTransition(competition.Status, *input.Status) {
			return nil, fmt.Errorf("%w: from '%s' to '%s'", ErrInvalidCompetitionTransition, competition.Status, *input.Status)
		}
		competition.Status = *input.Status
	}
	if input.CurrentPhase != nil {
		label := normalizeName(*input.CurrentPhase)
		if label == "" {
			competition.CurrentPhase = nil
		} else {
			competition.CurrentPhase = &label
		}
	}

	if err := s.competitionRepo.Update(ctx, competition); err != nil {
		return nil, fmt.Errorf("failed to update competition %d: %w", id, err)
	}
	return competition, nil
}

// DeleteCompetition removes the competition together with its matches,
// phases and team bindings in one transaction.
func (s *competitionService) DeleteCompetition(ctx context.Context, id int) error {
	if _, err := s.competitionRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get competition %d: %w", id, err)
	}

	phases, err := s.phaseRepo.ListByCompetition(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list phases of competition %d: %w", id, err)
	}
	phaseIDs := make([]int, len(phases))
	for i, p := range phases {
		phaseIDs[i] = p.ID
	}
	release, err := s.guard.TryAcquire(phaseIDs...)
	if err != nil {
		return err
	}
	defer release()

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.DeleteByCompetition(ctx, exec, id); err != nil {
			return fmt.Errorf("failed to delete matches: %w", err)
		}
		if err := s.phaseRepo.DeleteByCompetition(ctx, exec, id); err != nil {
			return fmt.Errorf("failed to delete phases: %w", err)
		}
		if err := s.competitionRepo.UnbindAll(ctx, exec, id); err != nil {
			return fmt.Errorf("failed to unbind teams: %w", err)
		}
		return s.competitionRepo.Delete(ctx, exec, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete competition %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "competition deleted", slog.Int("competition_id", id), slog.Int("phases", len(phases)))
	return nil
}

func (s *competitionService) BindTeam(ctx context.Context, competitionID, teamID int) error {
	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	if competition.Status == models.CompetitionStatusClosed {
		return ErrCompetitionClosed
	}
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return fmt.Errorf("failed to get team %d: %w", teamID, err)
	}

	if err := s.competitionRepo.BindTeam(ctx, competitionID, teamID); err != nil {
		return fmt.Errorf("failed to bind team %d to competition %d: %w", teamID, competitionID, err)
	}
	return nil
}

// UnbindTeam refuses to drop a team that already has matches in the
// competition.
func (s *competitionService) UnbindTeam(ctx context.Context, competitionID, teamID int) error {
	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return fmt.Errorf("failed to list matches of competition %d: %w", competitionID, err)
	}
	for _, m := range matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			return ErrTeamHasMatches
		}
	}

	if err := s.competitionRepo.UnbindTeam(ctx, competitionID, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotBound) {
			return ErrTeamNotInPool
		}
		return fmt.Errorf("failed to unbind team %d from competition %d: %w", teamID, competitionID, err)
	}
	return nil
}

func (s *competitionService) ListPool(ctx context.Context, competitionID int) ([]models.Team, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	teams, err := s.competitionRepo.ListTeams(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of competition %d: %w", competitionID, err)
	}
	populateTeamLogoURLs(teams, s.uploader)
	return teams, nil
}
