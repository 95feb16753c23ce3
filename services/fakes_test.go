package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/realtime"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/storage"
)

var fixedNow = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// store backs every fake repository and records write operations in order.
type store struct {
	mu           sync.Mutex
	nextID       int
	teams        map[int]*models.Team
	competitions map[int]*models.Competition
	bindings     map[int][]int
	phases       map[int]*models.Phase
	matches      map[int]*models.Match
	ops          []string
}

func newStore() *store {
	return &store{
		nextID:       100,
		teams:        make(map[int]*models.Team),
		competitions: make(map[int]*models.Competition),
		bindings:     make(map[int][]int),
		phases:       make(map[int]*models.Phase),
		matches:      make(map[int]*models.Match),
	}
}

func (s *store) id() int {
	s.nextID++
	return s.nextID
}

func (s *store) log(format string, args ...interface{}) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *store) addTeam(id int, name string) {
	s.teams[id] = &models.Team{ID: id, Name: name}
}

func (s *store) addCompetition(id int, status models.CompetitionStatus, teams ...int) {
	s.competitions[id] = &models.Competition{ID: id, Name: fmt.Sprintf("Competition %d", id), Status: status}
	s.bindings[id] = append([]int(nil), teams...)
}

func (s *store) addPhase(id, competitionID int, typ models.PhaseType) {
	s.phases[id] = &models.Phase{ID: id, CompetitionID: competitionID, Name: fmt.Sprintf("Phase %d", id), Type: typ}
}

func (s *store) addMatch(m models.Match) *models.Match {
	if m.ID == 0 {
		m.ID = s.id()
	}
	if m.Status == "" {
		m.Status = models.MatchStatusScheduled
	}
	s.matches[m.ID] = &m
	return &m
}

func (s *store) phaseMatches(phaseID int) []models.Match {
	out := make([]models.Match, 0)
	for _, m := range s.matches {
		if inPhase(m, phaseID) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeTeamRepo struct{ s *store }

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if t.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = r.s.id()
	team.CreatedAt = fixedNow
	cp := *team
	r.s.teams[team.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTeamRepo) ListByIDs(ctx context.Context, ids []int) ([]models.Team, error) {
	out := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		t, err := r.GetByID(ctx, id)
		if err == nil {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[team.ID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.Name = team.Name
	return nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, teamID int, logoKey *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.LogoKey = logoKey
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	for _, m := range r.s.matches {
		if m.HomeTeamID == id || m.AwayTeamID == id {
			return repositories.ErrTeamInUse
		}
	}
	delete(r.s.teams, id)
	return nil
}

type fakeCompetitionRepo struct{ s *store }

func (r *fakeCompetitionRepo) Create(_ context.Context, c *models.Competition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	c.CreatedAt = fixedNow
	cp := *c
	r.s.competitions[c.ID] = &cp
	return nil
}

func (r *fakeCompetitionRepo) GetByID(_ context.Context, id int) (*models.Competition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.competitions[id]
	if !ok {
		return nil, repositories.ErrCompetitionNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompetitionRepo) List(_ context.Context, filter repositories.ListCompetitionsFilter) ([]models.Competition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Competition, 0)
	for _, c := range r.s.competitions {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCompetitionRepo) Update(_ context.Context, c *models.Competition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.competitions[c.ID]; !ok {
		return repositories.ErrCompetitionNotFound
	}
	cp := *c
	r.s.competitions[c.ID] = &cp
	return nil
}

func (r *fakeCompetitionRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.competitions[id]; !ok {
		return repositories.ErrCompetitionNotFound
	}
	delete(r.s.competitions, id)
	r.s.log("delete competition %d", id)
	return nil
}

func (r *fakeCompetitionRepo) BindTeam(_ context.Context, competitionID, teamID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range r.s.bindings[competitionID] {
		if id == teamID {
			return repositories.ErrTeamAlreadyBound
		}
	}
	r.s.bindings[competitionID] = append(r.s.bindings[competitionID], teamID)
	return nil
}

func (r *fakeCompetitionRepo) UnbindTeam(_ context.Context, competitionID, teamID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := r.s.bindings[competitionID]
	for i, id := range ids {
		if id == teamID {
			r.s.bindings[competitionID] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return repositories.ErrTeamNotBound
}

func (r *fakeCompetitionRepo) UnbindAll(_ context.Context, _ repositories.SQLExecutor, competitionID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.bindings, competitionID)
	r.s.log("unbind competition %d", competitionID)
	return nil
}

func (r *fakeCompetitionRepo) ListTeams(_ context.Context, competitionID int) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Team, 0)
	for _, id := range r.s.bindings[competitionID] {
		if t, ok := r.s.teams[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakePhaseRepo struct{ s *store }

func (r *fakePhaseRepo) Create(_ context.Context, p *models.Phase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	p.CreatedAt = fixedNow
	cp := *p
	r.s.phases[p.ID] = &cp
	return nil
}

func (r *fakePhaseRepo) GetByID(_ context.Context, id int) (*models.Phase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.phases[id]
	if !ok {
		return nil, repositories.ErrPhaseNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePhaseRepo) ListByCompetition(_ context.Context, competitionID int) ([]models.Phase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Phase, 0)
	for _, p := range r.s.phases {
		if p.CompetitionID == competitionID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePhaseRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.phases[id]; !ok {
		return repositories.ErrPhaseNotFound
	}
	delete(r.s.phases, id)
	r.s.log("delete phase %d", id)
	return nil
}

func (r *fakePhaseRepo) DeleteByCompetition(_ context.Context, _ repositories.SQLExecutor, competitionID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.phases {
		if p.CompetitionID == competitionID {
			delete(r.s.phases, id)
		}
	}
	r.s.log("delete phases of competition %d", competitionID)
	return nil
}

type fakeMatchRepo struct {
	s *store
	// failCreateAfter makes Create fail once that many matches were created.
	failCreateAfter int
	created         int
}

func (r *fakeMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.failCreateAfter > 0 && r.created >= r.failCreateAfter {
		return fmt.Errorf("insert failed")
	}
	r.created++
	m.ID = r.s.id()
	m.CreatedAt = fixedNow
	cp := *m
	r.s.matches[m.ID] = &cp
	r.s.log("create match %d-%d", m.HomeTeamID, m.AwayTeamID)
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMatchRepo) ListByCompetition(_ context.Context, competitionID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.CompetitionID == competitionID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) ListByPhase(_ context.Context, _ repositories.SQLExecutor, phaseID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.phaseMatches(phaseID), nil
}

func (r *fakeMatchRepo) Update(_ context.Context, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.matches[m.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	cp := *m
	r.s.matches[m.ID] = &cp
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.s.matches, id)
	return nil
}

func (r *fakeMatchRepo) DeleteByPhase(_ context.Context, _ repositories.SQLExecutor, phaseID int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, m := range r.s.matches {
		if inPhase(m, phaseID) {
			delete(r.s.matches, id)
			n++
		}
	}
	r.s.log("delete matches of phase %d", phaseID)
	return n, nil
}

func (r *fakeMatchRepo) DeleteByCompetition(_ context.Context, _ repositories.SQLExecutor, competitionID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.matches {
		if m.CompetitionID == competitionID {
			delete(r.s.matches, id)
		}
	}
	r.s.log("delete matches of competition %d", competitionID)
	return nil
}

// fakeTransactor snapshots the store and restores it when fn fails, which
// is enough to observe rollback behaviour.
type fakeTransactor struct {
	s     *store
	began int
}

func (t *fakeTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	t.began++

	t.s.mu.Lock()
	saved := make(map[int]*models.Match, len(t.s.matches))
	for id, m := range t.s.matches {
		saved[id] = m
	}
	t.s.mu.Unlock()

	if err := fn(nil); err != nil {
		t.s.mu.Lock()
		t.s.matches = saved
		t.s.log("rollback")
		t.s.mu.Unlock()
		return err
	}
	return nil
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages []realtime.Message
	rooms    []string
}

func (b *fakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomID)
	if msg, ok := message.(realtime.Message); ok {
		b.messages = append(b.messages, msg)
	}
}

type fakeUploader struct {
	objects map[string]string
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string]string)}
}

func (u *fakeUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.objects[key] = contentType + ":" + string(body)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type staticAuthorizer string

func (a staticAuthorizer) Authorize(secret string) bool {
	return secret != "" && secret == string(a)
}

// env wires every service against one store.
type env struct {
	store       *store
	tx          *fakeTransactor
	guard       *PhaseGuard
	broadcaster *fakeBroadcaster
	uploader    *fakeUploader
	matchRepo   *fakeMatchRepo

	teams        TeamService
	competitions CompetitionService
	phases       PhaseService
	matches      MatchService
	standings    StandingsService
	fixtures     FixtureService
	brackets     BracketService
}

func newEnv() *env {
	s := newStore()
	e := &env{
		store:       s,
		tx:          &fakeTransactor{s: s},
		guard:       NewPhaseGuard(),
		broadcaster: &fakeBroadcaster{},
		uploader:    newFakeUploader(),
		matchRepo:   &fakeMatchRepo{s: s},
	}
	teamRepo := &fakeTeamRepo{s: s}
	competitionRepo := &fakeCompetitionRepo{s: s}
	phaseRepo := &fakePhaseRepo{s: s}
	logger := discardLogger()
	now := func() time.Time { return fixedNow }

	teams := NewTeamService(teamRepo, e.uploader, logger).(*teamService)
	teams.now = now
	e.teams = teams

	e.competitions = NewCompetitionService(competitionRepo, phaseRepo, e.matchRepo, teamRepo, e.tx, e.guard, e.uploader, logger)
	e.phases = NewPhaseService(phaseRepo, competitionRepo, e.matchRepo, e.tx, e.guard, logger)

	matches := NewMatchService(e.matchRepo, competitionRepo, phaseRepo, e.guard, e.broadcaster, logger).(*matchService)
	matches.now = now
	e.matches = matches

	e.standings = NewStandingsService(competitionRepo, e.matchRepo, e.uploader)

	fixtures := NewFixtureService(phaseRepo, competitionRepo, e.matchRepo, e.tx, e.guard, e.broadcaster, logger).(*fixtureService)
	fixtures.now = now
	e.fixtures = fixtures

	bracketSvc := NewBracketService(phaseRepo, competitionRepo, e.matchRepo, e.tx, e.guard, e.broadcaster, logger).(*bracketService)
	bracketSvc.now = now
	e.brackets = bracketSvc

	return e
}

func inPhase(m *models.Match, phaseID int) bool {
	return m.PhaseID != nil && *m.PhaseID == phaseID
}
