package domain

import "context"

// InsightGenerator is the external text-completion collaborator. It takes a
// natural-language prompt and must answer with a document matching the
// AIInsight schema. Any transport or decoding problem surfaces as an error;
// the degrade-to-fallback policy lives with the caller, not here.
type InsightGenerator interface {
	Generate(ctx context.Context, prompt string) (*AIInsight, error)
}

// Confirmer guards destructive intents. Deployments wire a pass-through
// (the web client runs its own dialog before calling the API); tests wire
// scripted implementations.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }
