package jobs

import (
	"context"
	"time"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// JobStatus represents the current status of a job.
type JobStatus string

const (
	// JobStatusPending indicates the job is waiting to be processed.
	JobStatusPending JobStatus = "pending"
	// JobStatusRunning indicates the job is currently being processed.
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted indicates the job completed.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the job failed before producing results.
	JobStatusFailed JobStatus = "failed"
)

// BatchSuggestJob asks for entry suggestions for many transactions judged
// against a single chart of accounts. Per-transaction engine errors are
// recorded on the matching item, never retried: the engine is deterministic,
// so a retry would fail identically.
type BatchSuggestJob struct {
	JobID  string `json:"job_id"`
	UserID string `json:"user_id,omitempty"`

	Transactions []domain.TransactionContext `json:"transactions"`
	Accounts     []domain.Account            `json:"accounts"`
	Business     *domain.BusinessContext     `json:"business_context,omitempty"`

	Results []BatchItemResult `json:"results,omitempty"`

	Status      JobStatus  `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// BatchItemResult is the outcome for one transaction of a batch. Exactly one
// of Suggestion or Error is set.
type BatchItemResult struct {
	Index        int                             `json:"index"`
	Suggestion   *domain.EntrySuggestion         `json:"suggestion,omitempty"`
	Inference    *domain.CategoryInferenceResult `json:"inference,omitempty"`
	Alternatives []domain.EntrySuggestion        `json:"alternatives,omitempty"`
	Error        string                          `json:"error,omitempty"`
}

// Publisher enqueues batch suggestion jobs.
type Publisher interface {
	// PublishBatchSuggest publishes a batch suggestion job.
	PublishBatchSuggest(ctx context.Context, job *BatchSuggestJob) error

	// Close closes the publisher and releases resources.
	Close() error
}

// Consumer processes jobs from a queue.
type Consumer interface {
	// Start begins consuming jobs. The handler is called for each job.
	Start(ctx context.Context, handler JobHandler) error

	// Stop stops consuming and waits for in-flight jobs to complete.
	Stop(ctx context.Context) error
}

// JobHandler processes one job. The handler mutates the job's Results; an
// error marks the whole job failed.
type JobHandler func(ctx context.Context, job *BatchSuggestJob) error

// JobStore tracks job state for status queries.
type JobStore interface {
	// SaveJob saves or updates a job's state.
	SaveJob(ctx context.Context, job *BatchSuggestJob) error

	// GetJob retrieves a job by ID.
	GetJob(ctx context.Context, jobID string) (*BatchSuggestJob, error)

	// ListJobs retrieves jobs with optional filtering.
	ListJobs(ctx context.Context, filter JobFilter) ([]*BatchSuggestJob, error)
}

// JobFilter defines filtering criteria for listing jobs.
type JobFilter struct {
	UserID string
	Status JobStatus
	Limit  int
	Offset int
}
