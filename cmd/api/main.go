package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/finbooks/entry-suggest/internal/ai"
	"github.com/finbooks/entry-suggest/internal/api/handlers"
	"github.com/finbooks/entry-suggest/internal/api/middleware"
	"github.com/finbooks/entry-suggest/internal/config"
	"github.com/finbooks/entry-suggest/internal/engine"
	"github.com/finbooks/entry-suggest/internal/jobs"
	"github.com/finbooks/entry-suggest/internal/jobs/inmemory"
	"github.com/finbooks/entry-suggest/internal/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Build the engine, with AI stages only when providers are configured.
	opts := []engine.Option{
		engine.WithAITimeout(cfg.AI.Timeout),
		engine.WithAlternativesThreshold(cfg.AlternativesThreshold),
	}
	if cfg.AIEnabled() {
		var providers []ai.Provider
		for _, name := range cfg.AI.ModelPriority {
			switch name {
			case config.ProviderGemini:
				providers = append(providers, ai.NewGeminiProvider(cfg.AI.GeminiModel))
			case config.ProviderClaude:
				providers = append(providers, ai.NewClaudeProvider(cfg.AI.ClaudeAPIKey, cfg.AI.ClaudeModel))
			}
		}
		svc := ai.NewService(log, providers...)
		opts = append(opts, engine.WithEnhancer(svc), engine.WithAIClassifier(svc))
		log.Info().Strs("providers", cfg.AI.ModelPriority).Msg("AI stages enabled")
	} else {
		log.Info().Msg("No AI providers configured, running fully local")
	}

	eng := engine.New(log, opts...)

	// Initialize job infrastructure.
	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(100, 2, jobStore)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	// Batch jobs run each transaction through the engine; per-item failures
	// land on the item, not the job.
	jobHandler := func(ctx context.Context, job *jobs.BatchSuggestJob) error {
		log.Info().
			Str("job_id", job.JobID).
			Int("transactions", len(job.Transactions)).
			Msg("Processing batch suggestion job")

		job.Results = make([]jobs.BatchItemResult, 0, len(job.Transactions))
		for i, tx := range job.Transactions {
			item := jobs.BatchItemResult{Index: i}

			result, err := eng.Suggest(ctx, engine.SuggestRequest{
				Transaction: tx,
				Accounts:    job.Accounts,
				Business:    job.Business,
			})
			if err != nil {
				item.Error = err.Error()
			} else {
				s := result.Suggestion
				item.Suggestion = &s
				item.Inference = result.Inference
				item.Alternatives = result.Alternatives
			}
			job.Results = append(job.Results, item)
		}

		log.Info().
			Str("job_id", job.JobID).
			Int("results", len(job.Results)).
			Msg("Batch suggestion job completed")
		return nil
	}

	go func() {
		log.Info().Msg("Starting job worker")
		if err := jobQueue.Start(workerCtx, jobHandler); err != nil {
			log.Error().Err(err).Msg("Job worker stopped with error")
		}
	}()

	// Initialize handlers.
	suggestionsHandler := handlers.NewSuggestionsHandler(eng, jobQueue, log)
	jobsHandler := handlers.NewJobsHandler(jobStore, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/suggestions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			suggestionsHandler.Suggest(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/suggestions/batch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			suggestionsHandler.EnqueueBatch(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			jobsHandler.ListJobs(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/jobs/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			jobID := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
			if jobID == "" {
				middleware.WriteError(w, http.StatusBadRequest, "Job ID is required")
				return
			}
			jobsHandler.GetJob(w, r, jobID)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping job queue")
	}

	log.Info().Msg("Server exited")
}
