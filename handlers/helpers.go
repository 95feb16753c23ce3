package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/services"
)

type jsonResponse map[string]interface{}

const maxBodyBytes = 1_048_576

var validate = validator.New(validator.WithRequiredStructEnabled())

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// decodeAndValidate reads the body into dst and runs the struct tags. It
// writes the error response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := readJSON(w, r, dst); err != nil {
		badRequestResponse(w, r, err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			failedValidationResponse(w, r, validationErrors(ve))
			return false
		}
		badRequestResponse(w, r, err)
		return false
	}
	return true
}

func validationErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Namespace()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Default().ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	errorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusForbidden, message)
}

func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrTeamNotFound),
		errors.Is(err, repositories.ErrCompetitionNotFound),
		errors.Is(err, repositories.ErrPhaseNotFound),
		errors.Is(err, repositories.ErrMatchNotFound):
		notFoundResponse(w, r)

	// State conflicts: retrying the same request later may succeed.
	case errors.Is(err, repositories.ErrTeamNameConflict),
		errors.Is(err, repositories.ErrCompetitionNameConflict),
		errors.Is(err, repositories.ErrPhaseNameConflict),
		errors.Is(err, repositories.ErrTeamAlreadyBound),
		errors.Is(err, repositories.ErrTeamInUse),
		errors.Is(err, services.ErrTeamHasMatches),
		errors.Is(err, services.ErrPhaseBusy),
		errors.Is(err, services.ErrCompetitionClosed),
		errors.Is(err, services.ErrInvalidCompetitionTransition),
		errors.Is(err, services.ErrInvalidMatchTransition),
		errors.Is(err, services.ErrMatchNotLive),
		errors.Is(err, brackets.ErrRoundIncomplete),
		errors.Is(err, brackets.ErrDegenerateSet):
		conflictResponse(w, r, err.Error())

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrCompetitionNameRequired),
		errors.Is(err, services.ErrPhaseNameRequired),
		errors.Is(err, services.ErrInvalidPhaseType),
		errors.Is(err, services.ErrPhaseTypeMismatch),
		errors.Is(err, services.ErrPhaseCompetitionMismatch),
		errors.Is(err, services.ErrInvalidCompetitionStatus),
		errors.Is(err, services.ErrTeamNotInPool),
		errors.Is(err, services.ErrSameTeams),
		errors.Is(err, services.ErrNegativeScore),
		errors.Is(err, services.ErrInvalidSeedingMode),
		errors.Is(err, services.ErrDuplicateSlotTeam),
		errors.Is(err, services.ErrTooManySlots),
		errors.Is(err, services.ErrEmptyBracket),
		errors.Is(err, services.ErrPhaseHasNoMatches),
		errors.Is(err, services.ErrInvalidFileType),
		errors.Is(err, repositories.ErrCompetitionInvalidTeam),
		errors.Is(err, repositories.ErrPhaseInvalidCompetition),
		errors.Is(err, repositories.ErrMatchInvalidTeam),
		errors.Is(err, repositories.ErrMatchInvalidPhase),
		errors.Is(err, repositories.ErrMatchConstraint),
		errors.Is(err, brackets.ErrInsufficientPool),
		errors.Is(err, brackets.ErrInvalidBracketSize),
		errors.Is(err, brackets.ErrSlotOutOfRange),
		errors.Is(err, brackets.ErrGroupTooSmall),
		errors.Is(err, brackets.ErrTeamInManyGroups),
		errors.Is(err, brackets.ErrInvalidLegs):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())
	case errors.Is(err, services.ErrConfirmationFailed):
		forbiddenResponse(w, r, err.Error())

	case errors.Is(err, services.ErrLogoUploadDisabled):
		errorResponse(w, r, http.StatusServiceUnavailable, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}

	return id, nil
}

func getOptionalIntQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s query parameter: %q", name, raw)
	}
	return v, nil
}

var errNoFieldsToUpdate = errors.New("no fields provided for update")
