// Package llm wraps the optional language-model integrations. Nothing
// in the planning core depends on it; it only decorates output.
package llm

import "context"

// TextGenerator is an interface for a client that can generate text
// from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
