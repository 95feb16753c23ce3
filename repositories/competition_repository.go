package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-admin/models"
)

var (
	ErrCompetitionNotFound     = errors.New("competition not found")
	ErrCompetitionNameConflict = errors.New("competition name already exists")
	ErrCompetitionInvalidTeam  = errors.New("invalid team reference")
	ErrTeamAlreadyBound        = errors.New("team is already bound to this competition")
	ErrTeamNotBound            = errors.New("team is not bound to this competition")
)

type ListCompetitionsFilter struct {
	Status *models.CompetitionStatus
	Limit  int
	Offset int
}

type CompetitionRepository interface {
	Create(ctx context.Context, competition *models.Competition) error
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, filter ListCompetitionsFilter) ([]models.Competition, error)
	Update(ctx context.Context, competition *models.Competition) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error

	BindTeam(ctx context.Context, competitionID, teamID int) error
	UnbindTeam(ctx context.Context, competitionID, teamID int) error
	UnbindAll(ctx context.Context, exec SQLExecutor, competitionID int) error
	// ListTeams returns the eligible pool in binding order.
	ListTeams(ctx context.Context, competitionID int) ([]models.Team, error)
}

type postgresCompetitionRepository struct {
	db *sql.DB
}

func NewPostgresCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

func (r *postgresCompetitionRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	query := `
		INSERT INTO competitions (name, status, current_phase)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Status, c.CurrentPhase).Scan(&c.ID, &c.CreatedAt)
	return r.handleCompetitionError(err)
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	query := `SELECT id, name, status, current_phase, created_at FROM competitions WHERE id = $1`

	c := &models.Competition{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Status, &c.CurrentPhase, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context, filter ListCompetitionsFilter) ([]models.Competition, error) {
	query := `SELECT id, name, status, current_phase, created_at FROM competitions WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argID)
		args = append(args, *filter.Status)
		argID++
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competitions := make([]models.Competition, 0)
	for rows.Next() {
		var c models.Competition
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CurrentPhase, &c.CreatedAt); err != nil {
			return nil, err
		}
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

func (r *postgresCompetitionRepository) Update(ctx context.Context, c *models.Competition) error {
	query := `UPDATE competitions SET name = $1, status = $2, current_phase = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Status, c.CurrentPhase, c.ID)
	if err != nil {
		return r.handleCompetitionError(err)
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM competitions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) BindTeam(ctx context.Context, competitionID, teamID int) error {
	query := `INSERT INTO competition_teams (competition_id, team_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, competitionID, teamID)
	return r.handleCompetitionError(err)
}

func (r *postgresCompetitionRepository) UnbindTeam(ctx context.Context, competitionID, teamID int) error {
	query := `DELETE FROM competition_teams WHERE competition_id = $1 AND team_id = $2`
	result, err := r.db.ExecContext(ctx, query, competitionID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotBound)
}

func (r *postgresCompetitionRepository) UnbindAll(ctx context.Context, exec SQLExecutor, competitionID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM competition_teams WHERE competition_id = $1`, competitionID)
	return err
}

func (r *postgresCompetitionRepository) ListTeams(ctx context.Context, competitionID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.logo_key, t.created_at
		FROM competition_teams ct
		JOIN teams t ON t.id = ct.team_id
		WHERE ct.competition_id = $1
		ORDER BY ct.created_at, t.id`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, err
	}
	return scanTeams(rows)
}

func (r *postgresCompetitionRepository) handleCompetitionError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := asPQError(err); ok {
		switch pqErr.Code {
		case pqUniqueViolation:
			switch pqErr.Constraint {
			case "competitions_name_key":
				return ErrCompetitionNameConflict
			case "competition_teams_pkey":
				return ErrTeamAlreadyBound
			}
		case pqForeignKeyViolation:
			switch pqErr.Constraint {
			case "competition_teams_competition_id_fkey":
				return ErrCompetitionNotFound
			case "competition_teams_team_id_fkey":
				return ErrCompetitionInvalidTeam
			}
		}
	}
	return err
}
