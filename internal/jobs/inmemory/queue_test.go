package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finbooks/entry-suggest/internal/domain"
	"github.com/finbooks/entry-suggest/internal/jobs"
)

func waitForStatus(t *testing.T, store *Store, jobID string, want jobs.JobStatus) *jobs.BatchSuggestJob {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := store.GetJob(context.Background(), jobID)
		if err == nil && job.Status == want {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", jobID, want)
	return nil
}

func TestQueue_ProcessesJob(t *testing.T) {
	store := NewStore()
	queue := NewQueue(10, 1, store)
	defer queue.Close()

	handler := func(ctx context.Context, job *jobs.BatchSuggestJob) error {
		for i := range job.Transactions {
			job.Results = append(job.Results, jobs.BatchItemResult{Index: i})
		}
		return nil
	}
	if err := queue.Start(context.Background(), handler); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	job := &jobs.BatchSuggestJob{
		Transactions: []domain.TransactionContext{
			{Amount: -10, Description: "Coffee"},
			{Amount: -20, Description: "Lunch"},
		},
	}
	if err := queue.PublishBatchSuggest(context.Background(), job); err != nil {
		t.Fatalf("PublishBatchSuggest() error = %v", err)
	}
	if job.JobID == "" {
		t.Fatal("expected a generated job ID")
	}

	done := waitForStatus(t, store, job.JobID, jobs.JobStatusCompleted)
	if len(done.Results) != 2 {
		t.Errorf("results = %d, want 2", len(done.Results))
	}
	if done.StartedAt == nil || done.CompletedAt == nil {
		t.Error("expected started_at and completed_at to be set")
	}
}

func TestQueue_HandlerErrorMarksJobFailed(t *testing.T) {
	store := NewStore()
	queue := NewQueue(10, 1, store)
	defer queue.Close()

	handler := func(ctx context.Context, job *jobs.BatchSuggestJob) error {
		return errors.New("boom")
	}
	if err := queue.Start(context.Background(), handler); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	job := &jobs.BatchSuggestJob{
		Transactions: []domain.TransactionContext{{Amount: -10}},
	}
	if err := queue.PublishBatchSuggest(context.Background(), job); err != nil {
		t.Fatalf("PublishBatchSuggest() error = %v", err)
	}

	failed := waitForStatus(t, store, job.JobID, jobs.JobStatusFailed)
	if failed.Error != "boom" {
		t.Errorf("error = %q, want %q", failed.Error, "boom")
	}
}

func TestQueue_PublishedJobNotSharedWithCaller(t *testing.T) {
	store := NewStore()
	queue := NewQueue(10, 1, store)
	defer queue.Close()

	handler := func(ctx context.Context, job *jobs.BatchSuggestJob) error {
		job.Results = append(job.Results, jobs.BatchItemResult{Index: 0})
		return nil
	}
	if err := queue.Start(context.Background(), handler); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	job := &jobs.BatchSuggestJob{
		Transactions: []domain.TransactionContext{{Amount: -10, Description: "Coffee"}},
	}
	if err := queue.PublishBatchSuggest(context.Background(), job); err != nil {
		t.Fatalf("PublishBatchSuggest() error = %v", err)
	}

	waitForStatus(t, store, job.JobID, jobs.JobStatusCompleted)

	// The worker processed its own copy; the caller's struct still shows
	// the state set at publish time.
	if job.Status != jobs.JobStatusPending {
		t.Errorf("caller job status = %s, want %s", job.Status, jobs.JobStatusPending)
	}
	if job.StartedAt != nil || len(job.Results) != 0 {
		t.Errorf("caller job mutated by worker: started_at=%v results=%d", job.StartedAt, len(job.Results))
	}
}

func TestQueue_PublishAfterCloseFails(t *testing.T) {
	queue := NewQueue(1, 1, NewStore())
	if err := queue.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	err := queue.PublishBatchSuggest(context.Background(), &jobs.BatchSuggestJob{})
	if err == nil {
		t.Fatal("expected error publishing to a closed queue")
	}
}

func TestStore_ListJobsFilters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_ = store.SaveJob(ctx, &jobs.BatchSuggestJob{JobID: "a", UserID: "u1", Status: jobs.JobStatusPending})
	_ = store.SaveJob(ctx, &jobs.BatchSuggestJob{JobID: "b", UserID: "u1", Status: jobs.JobStatusCompleted})
	_ = store.SaveJob(ctx, &jobs.BatchSuggestJob{JobID: "c", UserID: "u2", Status: jobs.JobStatusCompleted})

	byUser, err := store.ListJobs(ctx, jobs.JobFilter{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("by user = %d jobs, want 2", len(byUser))
	}

	byStatus, err := store.ListJobs(ctx, jobs.JobFilter{Status: jobs.JobStatusCompleted})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(byStatus) != 2 {
		t.Errorf("by status = %d jobs, want 2", len(byStatus))
	}

	limited, err := store.ListJobs(ctx, jobs.JobFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited = %d jobs, want 1", len(limited))
	}
}

func TestStore_GetJobReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_ = store.SaveJob(ctx, &jobs.BatchSuggestJob{JobID: "a", Status: jobs.JobStatusPending})

	job, err := store.GetJob(ctx, "a")
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	job.Status = jobs.JobStatusFailed

	again, _ := store.GetJob(ctx, "a")
	if again.Status != jobs.JobStatusPending {
		t.Errorf("stored job mutated through returned copy: %s", again.Status)
	}
}
