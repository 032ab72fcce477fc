package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dcjobs/internal/job"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

type JobHandler struct {
	Svc *job.Service
}

type createJobReq struct {
	ClientName           string `json:"client_name"`
	ClientEmail          string `json:"client_email"`
	ClientPhone          string `json:"client_phone"`
	JobReceivedDate      string `json:"job_received_date"` // YYYY-MM-DD, optional
	ModeReceived         string `json:"mode_received"`
	JobDescription       string `json:"job_description"`
	TypeOfJob            string `json:"type_of_job"`
	AssignedTo           uint64 `json:"assigned_to"`
	TargetCompletionDate string `json:"target_completion_date"` // YYYY-MM-DD
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s (want YYYY-MM-DD)", field)
	}
	return t, nil
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	in := job.CreateInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		ModeReceived:   req.ModeReceived,
		JobDescription: req.JobDescription,
		TypeOfJob:      req.TypeOfJob,
		AssignedTo:     req.AssignedTo,
	}
	if v := strings.TrimSpace(req.JobReceivedDate); v != "" {
		t, err := parseDate("job_received_date", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.JobReceivedDate = t
	}
	if v := strings.TrimSpace(req.TargetCompletionDate); v != "" {
		t, err := parseDate("target_completion_date", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.TargetCompletionDate = t
	}

	jobID, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"job_id": jobID})
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := job.SearchFilter{
		ClientName: q.Get("client_name"),
		JobID:      q.Get("job_id"),
		Status:     strings.TrimSpace(q.Get("status")),
		AssignedTo: q.Get("assigned_to"),
	}
	if v := strings.TrimSpace(q.Get("start_date")); v != "" {
		t, err := parseDate("start_date", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.StartDate = &t
	}
	if v := strings.TrimSpace(q.Get("end_date")); v != "" {
		t, err := parseDate("end_date", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.EndDate = &t
	}

	rows, err := h.Svc.Search(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func jobIDParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	j, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

type adminUpdateReq struct {
	InvoiceRaised   job.Flag `json:"invoice_raised"`
	InvoiceAmount   float64  `json:"invoice_amount"`
	PaymentReceived job.Flag `json:"payment_received"`
	Status          string   `json:"status"`
	TypeOfJob       string   `json:"type_of_job"`
}

func (h *JobHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req adminUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	err = h.Svc.AdminUpdate(r.Context(), id, job.AdminUpdateInput{
		InvoiceRaised:   req.InvoiceRaised,
		InvoiceAmount:   req.InvoiceAmount,
		PaymentReceived: req.PaymentReceived,
		Status:          req.Status,
		TypeOfJob:       req.TypeOfJob,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type detailUpdateReq struct {
	InvoiceRaised   job.Flag `json:"invoice_raised"`
	IsDelivered     job.Flag `json:"is_delivered"`
	PaymentReceived job.Flag `json:"payment_received"`

	InvoiceNumber    string  `json:"invoice_number"`
	InvoiceAmount    float64 `json:"invoice_amount"`
	PaymentMode      string  `json:"payment_mode"`
	PaymentReference string  `json:"payment_reference"`
	JobReceivedDate  string  `json:"job_received_date"` // YYYY-MM-DD
}

func (h *JobHandler) DetailUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req detailUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	in := job.DetailUpdateInput{
		InvoiceRaised:    req.InvoiceRaised,
		IsDelivered:      req.IsDelivered,
		PaymentReceived:  req.PaymentReceived,
		InvoiceNumber:    req.InvoiceNumber,
		InvoiceAmount:    req.InvoiceAmount,
		PaymentMode:      req.PaymentMode,
		PaymentReference: req.PaymentReference,
	}
	if v := strings.TrimSpace(req.JobReceivedDate); v != "" {
		t, err := parseDate("job_received_date", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.JobReceivedDate = t
	}

	if err := h.Svc.DetailUpdate(r.Context(), id, in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *JobHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *JobHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Svc.ExportXLSX(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=jobs.xlsx")
	_, _ = w.Write(data)
}
