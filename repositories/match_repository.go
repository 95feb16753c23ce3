package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-admin/models"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchInvalidTeam  = errors.New("invalid team reference")
	ErrMatchInvalidPhase = errors.New("invalid phase reference")
	ErrMatchConstraint   = errors.New("match violates a table constraint")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error)
	// ListByPhase returns matches in creation order, which is bracket
	// order for generated fixtures.
	ListByPhase(ctx context.Context, exec SQLExecutor, phaseID int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	DeleteByPhase(ctx context.Context, exec SQLExecutor, phaseID int) (int64, error)
	DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `id, competition_id, phase_id, home_team_id, away_team_id,
	home_score, away_score, status, scheduled_at, created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		INSERT INTO matches (
			competition_id, phase_id, home_team_id, away_team_id,
			home_score, away_score, status, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		m.CompetitionID, m.PhaseID, m.HomeTeamID, m.AwayTeamID,
		m.HomeScore, m.AwayScore, m.Status, m.ScheduledAt,
	).Scan(&m.ID, &m.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.CompetitionID, &m.PhaseID, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeScore, &m.AwayScore, &m.Status, &m.ScheduledAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE competition_id = $1 ORDER BY scheduled_at, id`
	return r.list(ctx, r.db, query, competitionID)
}

func (r *postgresMatchRepository) ListByPhase(ctx context.Context, exec SQLExecutor, phaseID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE phase_id = $1 ORDER BY id`
	return r.list(ctx, r.getExecutor(exec), query, phaseID)
}

func (r *postgresMatchRepository) list(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID, &m.CompetitionID, &m.PhaseID, &m.HomeTeamID, &m.AwayTeamID,
			&m.HomeScore, &m.AwayScore, &m.Status, &m.ScheduledAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) Update(ctx context.Context, m *models.Match) error {
	query := `UPDATE matches SET home_score = $1, away_score = $2, status = $3, scheduled_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, m.HomeScore, m.AwayScore, m.Status, m.ScheduledAt, m.ID)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByPhase(ctx context.Context, exec SQLExecutor, phaseID int) (int64, error) {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM matches WHERE phase_id = $1`, phaseID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *postgresMatchRepository) DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM matches WHERE competition_id = $1`, competitionID)
	return err
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := asPQError(err); ok {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			switch pqErr.Constraint {
			case "matches_phase_id_fkey":
				return ErrMatchInvalidPhase
			case "matches_competition_id_fkey":
				return ErrCompetitionNotFound
			default:
				return ErrMatchInvalidTeam
			}
		case pqCheckViolation:
			return fmt.Errorf("%w: %s", ErrMatchConstraint, pqErr.Constraint)
		}
	}
	return err
}
