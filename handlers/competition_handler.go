package handlers

import (
	"net/http"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/services"
)

type CompetitionHandler struct {
	competitionService services.CompetitionService
	phaseService       services.PhaseService
	matchService       services.MatchService
	standingsService   services.StandingsService
}

func NewCompetitionHandler(
	cs services.CompetitionService,
	ps services.PhaseService,
	ms services.MatchService,
	ss services.StandingsService,
) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService: cs,
		phaseService:       ps,
		matchService:       ms,
		standingsService:   ss,
	}
}

// CreateCompetition godoc
// @Summary Create a competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param input body services.CreateCompetitionInput true "Competition"
// @Success 201 {object} models.Competition
// @Security BearerAuth
// @Router /competitions [post]
func (h *CompetitionHandler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCompetitionInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	competition, err := h.competitionService.CreateCompetition(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListCompetitions godoc
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Param status query string false "scheduled, active or closed"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Competition
// @Security BearerAuth
// @Router /competitions [get]
func (h *CompetitionHandler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	var filter repositories.ListCompetitionsFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.CompetitionStatus(raw)
		filter.Status = &status
	}

	var err error
	if filter.Limit, err = getOptionalIntQuery(r, "limit"); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.Offset, err = getOptionalIntQuery(r, "offset"); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitions, err := h.competitionService.ListCompetitions(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitions": competitions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) GetCompetitionByID(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.GetCompetitionByID(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateCompetition godoc
// @Summary Rename a competition, move its status or set the current phase label
// @Tags competitions
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param input body services.UpdateCompetitionInput true "Changes"
// @Success 200 {object} models.Competition
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /competitions/{competitionID} [patch]
func (h *CompetitionHandler) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateCompetitionInput
	if !decodeAndValidate(w, r, &input) {
		return
	}
	if input.Name == nil && input.Status == nil && input.CurrentPhase == nil {
		badRequestResponse(w, r, errNoFieldsToUpdate)
		return
	}

	competition, err := h.competitionService.UpdateCompetition(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteCompetition godoc
// @Summary Delete a competition with its phases and matches
// @Tags competitions
// @Param competitionID path int true "Competition ID"
// @Param X-Confirm-Secret header string true "Admin confirmation"
// @Success 204
// @Security BearerAuth
// @Router /competitions/{competitionID} [delete]
func (h *CompetitionHandler) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competitionService.DeleteCompetition(r.Context(), competitionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CompetitionHandler) BindTeam(w http.ResponseWriter, r *http.Request) {
	competitionID, teamID, ok := competitionAndTeam(w, r)
	if !ok {
		return
	}

	if err := h.competitionService.BindTeam(r.Context(), competitionID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CompetitionHandler) UnbindTeam(w http.ResponseWriter, r *http.Request) {
	competitionID, teamID, ok := competitionAndTeam(w, r)
	if !ok {
		return
	}

	if err := h.competitionService.UnbindTeam(r.Context(), competitionID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CompetitionHandler) ListPool(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.competitionService.ListPool(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) CreatePhase(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreatePhaseInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	phase, err := h.phaseService.CreatePhase(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"phase": phase}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) ListPhases(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phases, err := h.phaseService.ListPhases(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phases": phases}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateMatch godoc
// @Summary Schedule a single match
// @Description The phase is optional. A match without a phase still counts for the competition table.
// @Tags matches
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param input body services.CreateMatchInput true "Match"
// @Success 201 {object} models.Match
// @Security BearerAuth
// @Router /competitions/{competitionID}/matches [post]
func (h *CompetitionHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateMatchInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	match, err := h.matchService.CreateMatch(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
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

func (h *CompetitionHandler) Standings(w http.ResponseWriter, r *http.Request) {
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

func competitionAndTeam(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	return competitionID, teamID, true
}
