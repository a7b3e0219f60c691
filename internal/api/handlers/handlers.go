package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/finbooks/entry-suggest/internal/api/middleware"
	"github.com/finbooks/entry-suggest/internal/catalog"
	"github.com/finbooks/entry-suggest/internal/engine"
	"github.com/finbooks/entry-suggest/internal/jobs"
)

// SuggestionsHandler handles suggestion endpoints.
type SuggestionsHandler struct {
	engine    *engine.Engine
	publisher jobs.Publisher
	log       zerolog.Logger
}

// NewSuggestionsHandler creates a new suggestions handler.
func NewSuggestionsHandler(eng *engine.Engine, publisher jobs.Publisher, log zerolog.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{
		engine:    eng,
		publisher: publisher,
		log:       log,
	}
}

// Suggest handles POST /api/suggestions
func (h *SuggestionsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req engine.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Accounts) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "accounts are required")
		return
	}
	if err := catalog.Validate(req.Accounts); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Suggest(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNoAssetAccount), errors.Is(err, engine.ErrNoSuggestion):
			middleware.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.log.Error().Err(err).Msg("Failed to build suggestion")
			middleware.WriteError(w, http.StatusInternalServerError, "Failed to build suggestion")
		}
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// EnqueueBatch handles POST /api/suggestions/batch
func (h *SuggestionsHandler) EnqueueBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var job jobs.BatchSuggestJob
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(job.Transactions) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "transactions are required")
		return
	}
	if len(job.Accounts) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "accounts are required")
		return
	}
	if err := catalog.Validate(job.Accounts); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	job.Results = nil
	if err := h.publisher.PublishBatchSuggest(ctx, &job); err != nil {
		h.log.Error().Err(err).Msg("Failed to enqueue batch job")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to enqueue batch job")
		return
	}

	h.log.Info().
		Str("job_id", job.JobID).
		Int("transactions", len(job.Transactions)).
		Msg("Batch suggestion job enqueued")

	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"job_id": job.JobID,
		"status": string(job.Status),
	})
}

// JobsHandler handles job-related endpoints.
type JobsHandler struct {
	store jobs.JobStore
	log   zerolog.Logger
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(store jobs.JobStore, log zerolog.Logger) *JobsHandler {
	return &JobsHandler{
		store: store,
		log:   log,
	}
}

// GetJob handles GET /api/jobs/{id}
func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request, jobID string) {
	ctx := r.Context()

	job, err := h.store.GetJob(ctx, jobID)
	if err != nil {
		h.log.Error().Err(err).Str("job_id", jobID).Msg("Failed to get job")
		middleware.WriteError(w, http.StatusNotFound, "Job not found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, job)
}

// ListJobs handles GET /api/jobs
func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	filter := jobs.JobFilter{
		UserID: query.Get("user_id"),
		Status: jobs.JobStatus(query.Get("status")),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}

	jobsList, err := h.store.ListJobs(ctx, filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list jobs")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  jobsList,
		"count": len(jobsList),
	})
}
