// Package engine is the boundary to the translation generation model.
package engine

import "context"

// Engine produces a translation for a French utterance. Implementations may
// be backed by a hosted model (openai.go) or by a deterministic substitution
// table (mock.go).
type Engine interface {
	// Translate runs a full translation and returns the complete output.
	Translate(ctx context.Context, text string) (string, error)
	// TranslateStream pushes partial output to onToken in production order.
	// Chunk boundaries are engine-defined. A non-nil error from onToken
	// aborts generation and is returned as-is.
	TranslateStream(ctx context.Context, text string, onToken func(string) error) error
	Name() string
}
