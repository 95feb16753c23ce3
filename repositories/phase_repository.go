package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-admin/models"
)

var (
	ErrPhaseNotFound           = errors.New("phase not found")
	ErrPhaseNameConflict       = errors.New("phase name already exists in this competition")
	ErrPhaseInvalidCompetition = errors.New("invalid competition reference")
)

type PhaseRepository interface {
	Create(ctx context.Context, phase *models.Phase) error
	GetByID(ctx context.Context, id int) (*models.Phase, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Phase, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error
}

type postgresPhaseRepository struct {
	db *sql.DB
}

func NewPostgresPhaseRepository(db *sql.DB) PhaseRepository {
	return &postgresPhaseRepository{db: db}
}

func (r *postgresPhaseRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPhaseRepository) Create(ctx context.Context, p *models.Phase) error {
	query := `INSERT INTO phases (competition_id, name, type) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, p.CompetitionID, p.Name, p.Type).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pqErr, ok := asPQError(err); ok {
			switch pqErr.Code {
			case pqUniqueViolation:
				return ErrPhaseNameConflict
			case pqForeignKeyViolation:
				return ErrPhaseInvalidCompetition
			}
		}
		return err
	}
	return nil
}

func (r *postgresPhaseRepository) GetByID(ctx context.Context, id int) (*models.Phase, error) {
	query := `SELECT id, competition_id, name, type, created_at FROM phases WHERE id = $1`

	p := &models.Phase{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CompetitionID, &p.Name, &p.Type, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhaseNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPhaseRepository) ListByCompetition(ctx context.Context, competitionID int) ([]models.Phase, error) {
	query := `
		SELECT id, competition_id, name, type, created_at
		FROM phases
		WHERE competition_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phases := make([]models.Phase, 0)
	for rows.Next() {
		var p models.Phase
		if err := rows.Scan(&p.ID, &p.CompetitionID, &p.Name, &p.Type, &p.CreatedAt); err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	return phases, rows.Err()
}

func (r *postgresPhaseRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM phases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPhaseNotFound)
}

func (r *postgresPhaseRepository) DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM phases WHERE competition_id = $1`, competitionID)
	return err
}
