// Package engine turns a single raw bank/card transaction into a balanced
// double-entry suggestion: one debit account, one credit account, an amount,
// a confidence score, and a human-readable rationale.
//
// The engine is stateless: every call is a pure function of the transaction,
// the supplied chart of accounts, and optional overrides/business context,
// plus at most one best-effort call per configured AI provider. Failures of
// the AI stages degrade to the local deterministic result and are never
// surfaced to the caller.
package engine

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbooks/entry-suggest/internal/classify"
	"github.com/finbooks/entry-suggest/internal/domain"
)

// ExplanationEnhancer rewrites the local explanation using an external
// text-generation service. An error return leaves the suggestion untouched.
type ExplanationEnhancer interface {
	EnhanceExplanation(
		ctx context.Context,
		suggestion domain.EntrySuggestion,
		tx domain.TransactionContext,
		biz *domain.BusinessContext,
		accounts []domain.Account,
	) (string, error)
}

// CategoryClassifier infers a category for a transaction using an external
// service. An error return keeps the keyword result.
type CategoryClassifier interface {
	InferCategory(
		ctx context.Context,
		tx domain.TransactionContext,
		biz *domain.BusinessContext,
	) (domain.CategoryInferenceResult, error)
}

// Confidence bonus applied when explanation enhancement succeeds, capped so
// confidence never exceeds 1.0.
const enhancementBonus = 0.05

// Engine orchestrates classification, account resolution, entry synthesis,
// optional AI enhancement, and alternative generation.
type Engine struct {
	enhancer     ExplanationEnhancer
	classifier   CategoryClassifier
	aiTimeout    time.Duration
	altThreshold float64
	log          zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEnhancer enables explanation enhancement.
func WithEnhancer(e ExplanationEnhancer) Option {
	return func(eng *Engine) { eng.enhancer = e }
}

// WithAIClassifier enables AI category inference for transactions lacking a
// category.
func WithAIClassifier(c CategoryClassifier) Option {
	return func(eng *Engine) { eng.classifier = c }
}

// WithAITimeout bounds each AI stage (category inference, explanation
// enhancement). The provider fallback chain within a stage shares the
// budget.
func WithAITimeout(d time.Duration) Option {
	return func(eng *Engine) { eng.aiTimeout = d }
}

// WithAlternativesThreshold sets the confidence below which alternative
// suggestions are generated.
func WithAlternativesThreshold(t float64) Option {
	return func(eng *Engine) { eng.altThreshold = t }
}

// New creates an Engine. Without options the engine is fully local: no AI
// stages, alternatives below confidence 0.70.
func New(log zerolog.Logger, opts ...Option) *Engine {
	eng := &Engine{
		aiTimeout:    10 * time.Second,
		altThreshold: 0.70,
		log:          log,
	}
	for _, o := range opts {
		o(eng)
	}
	return eng
}

// SuggestRequest is one suggestion call: a transaction plus the catalog it
// is judged against. The catalog is read once and never cached across calls.
type SuggestRequest struct {
	Transaction             domain.TransactionContext `json:"transaction"`
	Accounts                []domain.Account          `json:"accounts"`
	Business                *domain.BusinessContext   `json:"business_context,omitempty"`
	OverrideDebitAccountID  string                    `json:"override_debit_account_id,omitempty"`
	OverrideCreditAccountID string                    `json:"override_credit_account_id,omitempty"`
}

// SuggestResult is the complete outcome of one suggestion call.
type SuggestResult struct {
	Suggestion   domain.EntrySuggestion          `json:"suggestion"`
	Inference    *domain.CategoryInferenceResult `json:"inference,omitempty"`
	Alternatives []domain.EntrySuggestion        `json:"alternatives,omitempty"`
}

// Suggest produces the primary suggestion for one transaction, enhanced when
// an AI provider is configured and reachable, with alternatives attached
// when the final confidence falls below the engine threshold.
//
// Only ErrNoAssetAccount and ErrNoSuggestion can be returned; every soft
// failure resolves to a complete low-confidence result.
func (e *Engine) Suggest(ctx context.Context, req SuggestRequest) (SuggestResult, error) {
	tx := req.Transaction

	hints, inference := e.categoryHints(ctx, req)

	suggestion, err := SuggestEntry(tx, req.Accounts, hints, Overrides{
		DebitAccountID:  req.OverrideDebitAccountID,
		CreditAccountID: req.OverrideCreditAccountID,
	}, req.Business)
	if err != nil {
		return SuggestResult{}, err
	}

	suggestion = e.enhance(ctx, suggestion, tx, req.Business, req.Accounts)

	result := SuggestResult{
		Suggestion: suggestion,
		Inference:  inference,
	}
	if suggestion.Confidence < e.altThreshold {
		result.Alternatives = Alternatives(suggestion, tx, req.Accounts)
	}
	return result, nil
}

// categoryHints returns the ordered category labels for account resolution.
// A caller-declared category wins outright; otherwise the keyword classifier
// runs, optionally upgraded by AI inference. Plaid categories serve as
// secondary hints ahead of a low-confidence fallback classification.
func (e *Engine) categoryHints(ctx context.Context, req SuggestRequest) ([]string, *domain.CategoryInferenceResult) {
	tx := req.Transaction
	if len(tx.Category) > 0 {
		return tx.Category, nil
	}

	inferred := classify.Classify(tx.Description, tx.Merchant, tx.IsBusiness)

	if e.classifier != nil {
		aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
		aiResult, err := e.classifier.InferCategory(aiCtx, tx, req.Business)
		cancel()
		switch {
		case err != nil:
			e.log.Debug().Err(err).Msg("AI category inference unavailable, keeping keyword result")
		case aiResult.Category != "" && aiResult.Confidence > inferred.Confidence:
			aiResult.Method = domain.InferenceMethodAI
			aiResult.IsNewCategory = !classify.IsKnownCategory(aiResult.Category, tx.IsBusiness)
			inferred = aiResult
		}
	}

	hints := []string{inferred.Category}
	if inferred.Confidence <= 0.50 && len(tx.PlaidCategory) > 0 {
		hints = append(tx.PlaidCategory, inferred.Category)
	}
	return hints, &inferred
}

// enhance runs the optional explanation enhancement. Any failure keeps the
// local explanation and confidence unchanged.
func (e *Engine) enhance(
	ctx context.Context,
	s domain.EntrySuggestion,
	tx domain.TransactionContext,
	biz *domain.BusinessContext,
	accounts []domain.Account,
) domain.EntrySuggestion {
	if e.enhancer == nil {
		return s
	}

	aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	text, err := e.enhancer.EnhanceExplanation(aiCtx, s, tx, biz, accounts)
	if err != nil || text == "" {
		e.log.Debug().Err(err).Msg("explanation enhancement unavailable, keeping local explanation")
		return s
	}

	s.Explanation = text
	s.Confidence = math.Min(1.0, s.Confidence+enhancementBonus)
	return s
}
