package handlers

import (
	"net/http"

	"github.com/Dosada05/league-admin/services"
)

// PublicHandler serves the read-only pages shown to spectators.
type PublicHandler struct {
	competitionService services.CompetitionService
	matchService       services.MatchService
	standingsService   services.StandingsService
}

func NewPublicHandler(cs services.CompetitionService, ms services.MatchService, ss services.StandingsService) *PublicHandler {
	return &PublicHandler{
		competitionService: cs,
		matchService:       ms,
		standingsService:   ss,
	}
}

// ListActiveCompetitions godoc
// @Summary Competitions currently being played
// @Tags public
// @Produce json
// @Success 200 {array} models.Competition
// @Router /public/competitions [get]
func (h *PublicHandler) ListActiveCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := h.competitionService.ListActiveCompetitions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitions": competitions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Standings godoc
// @Summary Competition table
// @Tags public
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {array} models.Standing
// @Router /public/competitions/{competitionID}/standings [get]
func (h *PublicHandler) Standings(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.Standings(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Matches godoc
// @Summary Matches of a competition
// @Tags public
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {array} models.Match
// @Router /public/competitions/{competitionID}/matches [get]
func (h *PublicHandler) Matches(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListByCompetition(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
