package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/ftracker/internal/models"
	"github.com/meltforce/ftracker/internal/observability"
	"github.com/meltforce/ftracker/internal/workout"
)

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	lang := s.lang
	if q := r.URL.Query().Get("lang"); q != "" {
		parsed, err := workout.ParseLanguage(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		lang = parsed
	}

	var req models.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordWorkoutError(err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid JSON: " + err.Error(),
			Reason: observability.ReasonInvalidInput,
		})
		return
	}

	res, err := workout.Build(req.Type, req.Data)
	if err != nil {
		observability.RecordWorkoutError(err)
		s.log.Warn("workout rejected", "type", req.Type, "values", len(req.Data), "error", err,
			"request_id", requestIDFromContext(r))
		writeJSON(w, statusForBuildError(err), models.ErrorResponse{
			Error:  err.Error(),
			Reason: observability.Reason(err),
		})
		return
	}
	observability.RecordWorkoutComputed(res)

	if !res.Finite() {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "workout result is not finite (is the duration zero?)",
			Reason: observability.ReasonNonFinite,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.NewComputeResponse(res, lang))
}

func statusForBuildError(err error) int {
	if errors.Is(err, workout.ErrUnsupportedWorkoutType) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.WorkoutTypes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
