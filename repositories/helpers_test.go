package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffectedRows(t *testing.T) {
	assert.NoError(t, checkAffectedRows(fakeResult{rows: 1}, ErrTeamNotFound))
	assert.ErrorIs(t, checkAffectedRows(fakeResult{rows: 0}, ErrTeamNotFound), ErrTeamNotFound)

	err := checkAffectedRows(fakeResult{err: errors.New("driver gone")}, ErrTeamNotFound)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTeamNotFound)
}

func TestAsPQError(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: pqUniqueViolation, Constraint: "teams_name_key"})

	pqErr, ok := asPQError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "teams_name_key", pqErr.Constraint)

	_, ok = asPQError(errors.New("plain"))
	assert.False(t, ok)
}
