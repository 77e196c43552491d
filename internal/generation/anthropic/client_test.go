package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startright-uk/startright/internal/generation"
)

const okMessage = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"model": "claude-sonnet-4-20250514",
	"content": [{"type": "text", "text": "1. EXECUTIVE SUMMARY\nA fine plan."}],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 10, "output_tokens": 20}
}`

const emptyMessage = `{
	"id": "msg_02",
	"type": "message",
	"role": "assistant",
	"model": "claude-sonnet-4-20250514",
	"content": [],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 10, "output_tokens": 0}
}`

func TestClient_Generate(t *testing.T) {
	cases := map[string]struct {
		status        int
		body          string
		expected      string
		expectedNoTxt bool
		expectedError bool
	}{
		"Should Return Text On Success": {
			status:   http.StatusOK,
			body:     okMessage,
			expected: "1. EXECUTIVE SUMMARY\nA fine plan.",
		},
		"Should Return ErrNoContent On Empty Content": {
			status:        http.StatusOK,
			body:          emptyMessage,
			expectedError: true,
			expectedNoTxt: true,
		},
		"Should Return Error On Server Failure": {
			status:        http.StatusInternalServerError,
			body:          `{"type":"error","error":{"type":"api_error","message":"boom"}}`,
			expectedError: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			var received map[string]any

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
				_ = json.NewDecoder(r.Body).Decode(&received)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			g := NewGenerator(&Config{APIKey: "test-key", BaseURL: srv.URL})
			text, err := g.Generate(context.Background(), &generation.Request{
				System:    "be brief",
				Prompt:    "write a plan",
				MaxTokens: 4000,
			})

			assert.Equal(t, int32(1), calls.Load(), "exactly one request, no retries")
			require.NotNil(t, received)
			assert.Equal(t, generation.DefaultModel, received["model"])
			assert.EqualValues(t, 4000, received["max_tokens"])

			if !tc.expectedError {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, text)
				return
			}

			var genErr *generation.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "anthropic", genErr.Provider)
			assert.Equal(t, tc.expectedNoTxt, errors.Is(err, generation.ErrNoContent))
		})
	}
}
