package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseGuard(t *testing.T) {
	g := NewPhaseGuard()

	release, err := g.TryAcquire(1, 2)
	require.NoError(t, err)

	_, err = g.TryAcquire(2)
	assert.ErrorIs(t, err, ErrPhaseBusy)

	// All or nothing: 3 stays free when 1 is taken.
	_, err = g.TryAcquire(3, 1)
	assert.ErrorIs(t, err, ErrPhaseBusy)
	releaseThree, err := g.TryAcquire(3)
	require.NoError(t, err)
	releaseThree()

	release()
	release()

	again, err := g.TryAcquire(1, 2, 3)
	require.NoError(t, err)
	again()
}
