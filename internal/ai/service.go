package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// Service runs the AI stages over a fixed priority list of providers: one
// attempt per provider, stopping at the first success, no retries and no
// backoff. An empty provider list makes every stage report "no enhancement".
type Service struct {
	providers []Provider
	log       zerolog.Logger
}

// NewService creates a Service. Providers are tried in the order given.
func NewService(log zerolog.Logger, providers ...Provider) *Service {
	return &Service{providers: providers, log: log}
}

// EnhanceExplanation asks the configured models for a friendlier rationale
// for the synthesized entry. The returned error means "no enhancement"; the
// caller keeps the local explanation.
func (s *Service) EnhanceExplanation(
	ctx context.Context,
	suggestion domain.EntrySuggestion,
	tx domain.TransactionContext,
	biz *domain.BusinessContext,
	accounts []domain.Account,
) (string, error) {
	systemPrompt, userPrompt := BuildExplanationPrompt(suggestion, tx, biz, accounts)

	text, err := s.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// InferCategory asks the configured models to categorize the transaction.
// The returned error means "no inference"; the caller keeps the keyword
// result.
func (s *Service) InferCategory(
	ctx context.Context,
	tx domain.TransactionContext,
	biz *domain.BusinessContext,
) (domain.CategoryInferenceResult, error) {
	systemPrompt, userPrompt := BuildCategoryPrompt(tx, biz)

	text, err := s.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return domain.CategoryInferenceResult{}, err
	}

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &parsed); err != nil {
		return domain.CategoryInferenceResult{}, fmt.Errorf("infer category: unusable model output: %w", err)
	}
	if parsed.Category == "" {
		return domain.CategoryInferenceResult{}, fmt.Errorf("infer category: model returned empty category")
	}
	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}

	return domain.CategoryInferenceResult{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
		Method:     domain.InferenceMethodAI,
	}, nil
}

// generate tries each provider once in priority order.
func (s *Service) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if len(s.providers) == 0 {
		return "", fmt.Errorf("ai: no providers configured")
	}

	var lastErr error
	for _, p := range s.providers {
		text, err := p.Generate(ctx, systemPrompt, userPrompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err == nil {
			err = fmt.Errorf("empty output")
		}
		s.log.Debug().Err(err).Str("provider", p.Name()).Msg("AI provider attempt failed")
		lastErr = err
	}
	return "", fmt.Errorf("ai: all providers failed: %w", lastErr)
}

// extractJSONObject strips code fences and surrounding junk, keeping the
// first top-level JSON object when present.
func extractJSONObject(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			return strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
