package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
)

type PhaseService interface {
	CreatePhase(ctx context.Context, competitionID int, input CreatePhaseInput) (*models.Phase, error)
	GetPhaseByID(ctx context.Context, id int) (*models.Phase, error)
	ListPhases(ctx context.Context, competitionID int) ([]models.Phase, error)
	DeletePhase(ctx context.Context, id int) error
	// Groups derives the groups of a phase from the matches already in it.
	Groups(ctx context.Context, phaseID int) ([]PhaseGroup, error)
}

type CreatePhaseInput struct {
	Name string           `json:"name" validate:"required,max=120"`
	Type models.PhaseType `json:"type" validate:"required"`
}

type PhaseGroup struct {
	brackets.Group
	Standings []models.Standing `json:"standings"`
}

type groupCacheEntry struct {
	fingerprint uint64
	groups      []brackets.Group
}

type phaseService struct {
	phaseRepo       repositories.PhaseRepository
	competitionRepo repositories.CompetitionRepository
	matchRepo       repositories.MatchRepository
	tx              repositories.Transactor
	guard           *PhaseGuard
	logger          *slog.Logger

	cacheMu    sync.Mutex
	groupCache map[int]groupCacheEntry
}

func NewPhaseService(
	phaseRepo repositories.PhaseRepository,
	competitionRepo repositories.CompetitionRepository,
	matchRepo repositories.MatchRepository,
	tx repositories.Transactor,
	guard *PhaseGuard,
	logger *slog.Logger,
) PhaseService {
	return &phaseService{
		phaseRepo:       phaseRepo,
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		tx:              tx,
		guard:           guard,
		logger:          logger,
		groupCache:      make(map[int]groupCacheEntry),
	}
}

func (s *phaseService) CreatePhase(ctx context.Context, competitionID int, input CreatePhaseInput) (*models.Phase, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, ErrPhaseNameRequired
	}
	if !input.Type.IsValid() {
		return nil, ErrInvalidPhaseType
	}

	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	if competition.Status == models.CompetitionStatusClosed {
		return nil, ErrCompetitionClosed
	}

	phase := &models.Phase{CompetitionID: competitionID, Name: name, Type: input.Type}
	if err := s.phaseRepo.Create(ctx, phase); err != nil {
		return nil, fmt.Errorf("failed to create phase: %w", err)
	}
	return phase, nil
}

func (s *phaseService) GetPhaseByID(ctx context.Context, id int) (*models.Phase, error) {
	phase, err := s.phaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase %d: %w", id, err)
	}
	return phase, nil
}

func (s *phaseService) ListPhases(ctx context.Context, competitionID int) ([]models.Phase, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	phases, err := s.phaseRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	return phases, nil
}

// DeletePhase removes the phase's matches and then the phase itself in one
// transaction.
func (s *phaseService) DeletePhase(ctx context.Context, id int) error {
	release, err := s.guard.TryAcquire(id)
	if err != nil {
		return err
	}
	defer release()

	var removed int64
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		n, err := s.matchRepo.DeleteByPhase(ctx, exec, id)
		if err != nil {
			return fmt.Errorf("failed to delete matches: %w", err)
		}
		removed = n
		return s.phaseRepo.Delete(ctx, exec, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete phase %d: %w", id, err)
	}

	s.cacheMu.Lock()
	delete(s.groupCache, id)
	s.cacheMu.Unlock()

	s.logger.InfoContext(ctx, "phase deleted", slog.Int("phase_id", id), slog.Int64("matches_removed", removed))
	return nil
}

func (s *phaseService) Groups(ctx context.Context, phaseID int) ([]PhaseGroup, error) {
	if _, err := s.phaseRepo.GetByID(ctx, phaseID); err != nil {
		return nil, fmt.Errorf("failed to get phase %d: %w", phaseID, err)
	}
	matches, err := s.matchRepo.ListByPhase(ctx, nil, phaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of phase %d: %w", phaseID, err)
	}

	groups := s.detectGroups(phaseID, matches)

	result := make([]PhaseGroup, len(groups))
	for i, g := range groups {
		result[i] = PhaseGroup{
			Group:     g,
			Standings: brackets.ComputeStandings(g.TeamIDs, matches),
		}
	}
	return result, nil
}

// detectGroups reuses the previous detection while the phase's pairings
// are unchanged. Scores do not affect grouping and are left out of the
// fingerprint.
func (s *phaseService) detectGroups(phaseID int, matches []models.Match) []brackets.Group {
	fp := pairingFingerprint(matches)

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if entry, ok := s.groupCache[phaseID]; ok && entry.fingerprint == fp {
		return entry.groups
	}
	groups := brackets.DetectGroups(matches)
	s.groupCache[phaseID] = groupCacheEntry{fingerprint: fp, groups: groups}
	return groups
}

func pairingFingerprint(matches []models.Match) uint64 {
	h := fnv.New64a()
	var buf [24]byte
	for _, m := range matches {
		binary.LittleEndian.PutUint64(buf[0:], uint64(m.ID))
		binary.LittleEndian.PutUint64(buf[8:], uint64(m.HomeTeamID))
		binary.LittleEndian.PutUint64(buf[16:], uint64(m.AwayTeamID))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
