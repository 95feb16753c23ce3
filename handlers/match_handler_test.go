package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/services"
)

// stubMatchService keeps a single live match.
type stubMatchService struct {
	services.MatchService
	match models.Match
}

func (s *stubMatchService) GetMatchByID(_ context.Context, id int) (*models.Match, error) {
	if id != s.match.ID {
		return nil, repositories.ErrMatchNotFound
	}
	m := s.match
	return &m, nil
}

func (s *stubMatchService) UpdateScore(ctx context.Context, id int, input services.ScoreInput) (*models.Match, error) {
	if _, err := s.GetMatchByID(ctx, id); err != nil {
		return nil, err
	}
	if s.match.Status != models.MatchStatusLive {
		return nil, services.ErrMatchNotLive
	}
	s.match.HomeScore, s.match.AwayScore = input.HomeScore, input.AwayScore
	m := s.match
	return &m, nil
}

func (s *stubMatchService) FinishMatch(ctx context.Context, id int) (*models.Match, error) {
	if _, err := s.GetMatchByID(ctx, id); err != nil {
		return nil, err
	}
	s.match.Status = models.MatchStatusFinished
	m := s.match
	return &m, nil
}

func newMatchRouter(svc services.MatchService) http.Handler {
	h := NewMatchHandler(svc)
	r := chi.NewRouter()
	r.Route("/matches/{matchID}", func(r chi.Router) {
		r.Get("/", h.GetMatchByID)
		r.Patch("/score", h.UpdateScore)
		r.Post("/finish", h.FinishMatch)
	})
	return r
}

func TestMatchHandler_ScoreFlow(t *testing.T) {
	svc := &stubMatchService{match: models.Match{ID: 5, CompetitionID: 1, HomeTeamID: 1, AwayTeamID: 2, Status: models.MatchStatusLive}}
	router := newMatchRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/matches/5/score", strings.NewReader(`{"home_score":3,"away_score":1}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Match models.Match `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Match.HomeScore)
	assert.Equal(t, 1, body.Match.AwayScore)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matches/5/finish", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/matches/5/score", strings.NewReader(`{"home_score":4,"away_score":1}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMatchHandler_Errors(t *testing.T) {
	router := newMatchRouter(&stubMatchService{match: models.Match{ID: 5}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/6", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
