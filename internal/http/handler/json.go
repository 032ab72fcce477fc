package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"dcjobs/internal/job"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps lifecycle-service errors onto HTTP statuses.
// Storage failures are logged with detail and surfaced generically.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, job.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, job.ErrNotFound):
		writeError(w, http.StatusNotFound, "Job not found")
	default:
		log.Printf("storage error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Database error")
	}
}
