package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := fmt.Errorf("failed to generate study: %w", &Error{Provider: "anthropic", Err: ErrNoContent})

	var genErr *Error
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, "anthropic", genErr.Provider)
	assert.ErrorIs(t, err, ErrNoContent)
	assert.EqualError(t, err, "failed to generate study: anthropic generation failed: response contained no text content")
}

func TestGeneratorFunc(t *testing.T) {
	var got *Request
	g := GeneratorFunc(func(_ context.Context, req *Request) (string, error) {
		got = req
		return "", errors.New("offline")
	})

	_, err := g.Generate(context.Background(), &Request{Prompt: "hello", MaxTokens: 10})

	assert.EqualError(t, err, "offline")
	assert.Equal(t, "hello", got.Prompt)
}
