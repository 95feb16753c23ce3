package handlers

import (
	"net/http"
	"time"

	"github.com/Dosada05/league-admin/services"
)

type PhaseHandler struct {
	phaseService   services.PhaseService
	matchService   services.MatchService
	fixtureService services.FixtureService
	bracketService services.BracketService
}

func NewPhaseHandler(
	ps services.PhaseService,
	ms services.MatchService,
	fs services.FixtureService,
	bs services.BracketService,
) *PhaseHandler {
	return &PhaseHandler{
		phaseService:   ps,
		matchService:   ms,
		fixtureService: fs,
		bracketService: bs,
	}
}

type advanceRoundInput struct {
	ToPhaseID   int        `json:"to_phase_id" validate:"required,gt=0"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (h *PhaseHandler) GetPhaseByID(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phase, err := h.phaseService.GetPhaseByID(r.Context(), phaseID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phase": phase}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePhase godoc
// @Summary Delete a phase and all of its matches
// @Tags phases
// @Param phaseID path int true "Phase ID"
// @Param X-Confirm-Secret header string true "Admin confirmation"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /phases/{phaseID} [delete]
func (h *PhaseHandler) DeletePhase(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.phaseService.DeletePhase(r.Context(), phaseID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Groups godoc
// @Summary Groups of a phase, derived from its matches, with a table per group
// @Tags phases
// @Produce json
// @Param phaseID path int true "Phase ID"
// @Success 200 {array} services.PhaseGroup
// @Security BearerAuth
// @Router /phases/{phaseID}/groups [get]
func (h *PhaseHandler) Groups(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.phaseService.Groups(r.Context(), phaseID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PhaseHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListByPhase(r.Context(), phaseID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegenerateFixtures godoc
// @Summary Replace every match of a group stage with a fresh round robin
// @Tags phases
// @Accept json
// @Produce json
// @Param phaseID path int true "Phase ID"
// @Param X-Confirm-Secret header string true "Admin confirmation"
// @Param input body services.GroupFixturesInput true "Group rosters"
// @Success 201 {array} models.Match
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /phases/{phaseID}/fixtures [post]
func (h *PhaseHandler) RegenerateFixtures(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GroupFixturesInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	matches, err := h.fixtureService.RegenerateGroupFixtures(r.Context(), phaseID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PreviewBracket godoc
// @Summary Fill a bracket without saving it
// @Tags brackets
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param input body services.BracketInput true "Bracket"
// @Success 200 {object} services.BracketPreview
// @Security BearerAuth
// @Router /competitions/{competitionID}/bracket/preview [post]
func (h *PhaseHandler) PreviewBracket(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.BracketInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	preview, err := h.bracketService.Preview(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": preview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CommitBracket godoc
// @Summary Replace the matches of an elimination phase with a filled bracket
// @Tags brackets
// @Accept json
// @Produce json
// @Param phaseID path int true "Phase ID"
// @Param X-Confirm-Secret header string true "Admin confirmation"
// @Param input body services.BracketInput true "Bracket"
// @Success 201 {array} models.Match
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /phases/{phaseID}/bracket [post]
func (h *PhaseHandler) CommitBracket(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.BracketInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	matches, err := h.bracketService.Commit(r.Context(), phaseID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AdvanceRound godoc
// @Summary Replace the matches of the next elimination phase with the winners of this one
// @Tags brackets
// @Accept json
// @Produce json
// @Param phaseID path int true "Finished phase ID"
// @Param X-Confirm-Secret header string true "Admin confirmation"
// @Param input body advanceRoundInput true "Target phase"
// @Success 201 {array} models.Match
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /phases/{phaseID}/advance [post]
func (h *PhaseHandler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input advanceRoundInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	matches, err := h.bracketService.AdvanceRound(r.Context(), phaseID, input.ToPhaseID, input.ScheduledAt)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
