package services

import (
	"fmt"
	"sync"
)

// PhaseGuard marks phases with a structural write in flight. A second
// writer for the same phase is refused instead of queued.
type PhaseGuard struct {
	mu   sync.Mutex
	busy map[int]struct{}
}

func NewPhaseGuard() *PhaseGuard {
	return &PhaseGuard{busy: make(map[int]struct{})}
}

// TryAcquire claims every given phase or none of them. The returned
// function releases the claim.
func (g *PhaseGuard) TryAcquire(phaseIDs ...int) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range phaseIDs {
		if _, ok := g.busy[id]; ok {
			return nil, fmt.Errorf("phase %d: %w", id, ErrPhaseBusy)
		}
	}
	for _, id := range phaseIDs {
		g.busy[id] = struct{}{}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			for _, id := range phaseIDs {
				delete(g.busy, id)
			}
		})
	}, nil
}
