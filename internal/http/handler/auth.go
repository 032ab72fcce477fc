package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"dcjobs/internal/directory"
)

// AuthHandler resolves a mobile number to a user record. There is no
// password and no token; the caller keeps the returned role client-side.
// Deploy behind a trusted network only.
type AuthHandler struct {
	Svc *directory.Service
}

type signinReq struct {
	Mobile string `json:"mobile"`
}

type signinResp struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Mobile string `json:"mobile"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Mobile = strings.TrimSpace(req.Mobile)
	if req.Mobile == "" {
		writeError(w, http.StatusBadRequest, "Mobile number required")
		return
	}

	u, err := h.Svc.FindByMobile(r.Context(), req.Mobile)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("signin lookup error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, signinResp{
		ID:     u.ID,
		Name:   u.Name,
		Role:   u.Role,
		Mobile: u.MobileNo,
	})
}
