// Package ai hosts the optional external-model stages: explanation
// enhancement and category inference. Both are best-effort; every failure
// mode (missing configuration, timeout, transport error, unusable output)
// degrades to the caller's local result.
package ai

import "context"

// Provider generates a short text completion from a prompt pair. One
// implementation exists per configured model; providers are tried in
// priority order with a single attempt each and no retries.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate returns the model's text output for the prompts.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
