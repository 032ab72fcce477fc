package handler

import (
	"log"
	"net/http"

	"dcjobs/internal/directory"
)

type LookupHandler struct {
	Svc *directory.Service
}

func (h *LookupHandler) Codes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Svc.Codes(r.Context())
	if err != nil {
		log.Printf("codes lookup error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *LookupHandler) Users(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Svc.Employees(r.Context())
	if err != nil {
		log.Printf("employees lookup error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}
