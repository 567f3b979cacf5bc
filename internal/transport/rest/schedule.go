package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/job"
	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/internal/service/schedule"
)

// scheduleService defines the minimal interface needed by ScheduleHandler.
type scheduleService interface {
	Schedule(ctx context.Context, in schedule.ScheduleInput) (*domain.ScheduledJob, error)
	Cancel(ctx context.Context, draftID uuid.UUID) (int64, error)
	ListJobs(ctx context.Context, f job.ListFilter) ([]*domain.ScheduledJob, error)
	Sweep(ctx context.Context) (*schedule.SweepResult, error)
}

// ScheduleHandler serves scheduled-publication REST endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type scheduleRequest struct {
	DraftID string    `json:"draftId"`
	RunAt   time.Time `json:"runAt"`
	Targets []string  `json:"targets"`
}

type jobResponse struct {
	ID         string     `json:"id"`
	DraftID    string     `json:"draftId"`
	RunAt      time.Time  `json:"runAt"`
	Targets    []string   `json:"targets"`
	Status     string     `json:"status"`
	Attempts   int        `json:"attempts"`
	ExecutedAt *time.Time `json:"executedAt,omitempty"`
	LastError  *string    `json:"lastError,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Schedule handles POST /api/jobs.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unparseable draftId falls through as uuid.Nil and is reported
	// by input validation together with the other field errors.
	draftID, _ := uuid.Parse(req.DraftID) //nolint:errcheck

	targets := make([]domain.PublishTarget, 0, len(req.Targets))
	for _, t := range req.Targets {
		targets = append(targets, domain.PublishTarget(t))
	}

	j, err := h.svc.Schedule(r.Context(), schedule.ScheduleInput{
		DraftID: draftID,
		RunAt:   req.RunAt,
		Targets: targets,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJobResponse(j))
}

// Cancel handles DELETE /api/drafts/{id}/jobs. Cancelling a draft with no
// pending jobs is a no-op, not an error.
func (h *ScheduleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"cancelled": n})
}

// ListJobs handles GET /api/jobs?draftId=&status=&limit=.
func (h *ScheduleHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	var f job.ListFilter

	if v := r.URL.Query().Get("draftId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid draftId")
			return
		}
		f.DraftID = id
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.JobStatus(v)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		f.Status = status
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		f.Limit = limit
	}

	jobs, err := h.svc.ListJobs(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	writeJSON(w, http.StatusOK, out)
}

// Sweep handles POST /internal/sweep. The route is guarded by the shared
// sweep secret, not by user auth; an external cron invoker calls it.
func (h *ScheduleHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sweep(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func toJobResponse(j *domain.ScheduledJob) jobResponse {
	targets := make([]string, 0, len(j.Targets))
	for _, t := range j.Targets {
		targets = append(targets, string(t))
	}
	return jobResponse{
		ID:         j.ID.String(),
		DraftID:    j.DraftID.String(),
		RunAt:      j.RunAt,
		Targets:    targets,
		Status:     string(j.Status),
		Attempts:   j.Attempts,
		ExecutedAt: j.ExecutedAt,
		LastError:  j.LastError,
		CreatedAt:  j.CreatedAt,
	}
}
