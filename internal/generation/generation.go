package generation

import (
	"context"
	"errors"
	"fmt"
)

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// ErrNoContent is returned when the service answered without any text.
var ErrNoContent = errors.New("response contained no text content")

// Request is a single text-generation call.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Generator produces text for a prompt. Implementations make exactly one
// outbound call per Generate and never retry.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// Error reports a failed generation call.
type Error struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req *Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req *Request) (string, error) {
	return f(ctx, req)
}
