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

// fixtureWriter replaces the whole match set of a phase. Both the group
// fixture generator and the bracket commit go through it.
type fixtureWriter struct {
	matchRepo   repositories.MatchRepository
	tx          repositories.Transactor
	broadcaster realtime.Broadcaster
	logger      *slog.Logger
}

type FixturesReplaced struct {
	PhaseID int            `json:"phase_id"`
	Matches []models.Match `json:"matches"`
}

// replace deletes every match of the phase and inserts one scheduled match
// per pair, in pair order, inside a single transaction.
func (w *fixtureWriter) replace(ctx context.Context, phase *models.Phase, pairs []brackets.MatchPair, scheduledAt time.Time) ([]models.Match, error) {
	created := make([]models.Match, 0, len(pairs))
	var removed int64

	err := w.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		n, err := w.matchRepo.DeleteByPhase(ctx, exec, phase.ID)
		if err != nil {
			return fmt.Errorf("failed to delete fixtures: %w", err)
		}
		removed = n

		for _, p := range pairs {
			phaseID := phase.ID
			m := models.Match{
				CompetitionID: phase.CompetitionID,
				PhaseID:       &phaseID,
				HomeTeamID:    p.HomeTeamID,
				AwayTeamID:    p.AwayTeamID,
				Status:        models.MatchStatusScheduled,
				ScheduledAt:   scheduledAt,
			}
			if err := w.matchRepo.Create(ctx, exec, &m); err != nil {
				return fmt.Errorf("failed to create fixture %d-%d: %w", p.HomeTeamID, p.AwayTeamID, err)
			}
			created = append(created, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace fixtures of phase %d: %w", phase.ID, err)
	}

	w.logger.InfoContext(ctx, "phase fixtures replaced",
		slog.Int("phase_id", phase.ID),
		slog.Int64("removed", removed),
		slog.Int("created", len(created)),
	)
	if w.broadcaster != nil {
		w.broadcaster.BroadcastToRoom(realtime.CompetitionRoom(phase.CompetitionID), realtime.Message{
			Type:    realtime.MessageFixturesReplaced,
			Payload: FixturesReplaced{PhaseID: phase.ID, Matches: created},
			RoomID:  realtime.CompetitionRoom(phase.CompetitionID),
		})
	}
	return created, nil
}

// loadWritablePhase fetches a phase that is about to get new fixtures and
// checks its type and the state of its competition.
func loadWritablePhase(
	ctx context.Context,
	phaseRepo repositories.PhaseRepository,
	competitionRepo repositories.CompetitionRepository,
	phaseID int,
	want models.PhaseType,
) (*models.Phase, error) {
	phase, err := phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase %d: %w", phaseID, err)
	}
	if phase.Type != want {
		return nil, fmt.Errorf("%w: phase %d is '%s', expected '%s'", ErrPhaseTypeMismatch, phaseID, phase.Type, want)
	}
	competition, err := competitionRepo.GetByID(ctx, phase.CompetitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition %d: %w", phase.CompetitionID, err)
	}
	if competition.Status == models.CompetitionStatusClosed {
		return nil, ErrCompetitionClosed
	}
	return phase, nil
}
