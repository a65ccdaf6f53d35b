package adapter

import "context"

// LLMClient is the outbound port to the language-model service that drafts
// analyses, purchase requests, and emails.
type LLMClient interface {
	// Complete sends one system+user prompt pair to the given model and
	// returns the assistant's text. Failures surface as *models.Failure of
	// kind upstream; callers can rely on errors.As for status mapping.
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)

	// Configured reports whether the client has credentials to reach the
	// upstream service.
	Configured() bool
}
