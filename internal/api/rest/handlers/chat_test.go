package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChatReplier struct {
	mock.Mock
}

func (m *mockChatReplier) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestChatHandler_ServeHTTP(t *testing.T) {
	cases := map[string]struct {
		requestBody      string
		reply            string
		replyError       error
		expectReply      bool
		expectedStatus   int
		expectedResponse string
		expectedLog      map[string]string
	}{
		"Should Return 200 with Reply": {
			requestBody:      `{"message":"How much is the Pro package?"}`,
			reply:            "It's £99, and it includes a formation checklist.",
			expectReply:      true,
			expectedStatus:   http.StatusOK,
			expectedResponse: `{"reply":"It's £99, and it includes a formation checklist."}`,
		},
		"Should Return 400 on Invalid Request Body": {
			requestBody:      `{"message":`,
			expectedStatus:   http.StatusBadRequest,
			expectedResponse: `{"error":"invalid request body"}`,
		},
		"Should Return 400 on Empty Message": {
			requestBody:      `{"message":"   "}`,
			expectedStatus:   http.StatusBadRequest,
			expectedResponse: `{"error":"message is required"}`,
		},
		"Should Return 500 on Reply Failure": {
			requestBody:      `{"message":"hello"}`,
			replyError:       errors.New("failed to get chat reply: anthropic generation failed: 529"),
			expectReply:      true,
			expectedStatus:   http.StatusInternalServerError,
			expectedResponse: `{"error":"Failed to get reply"}`,
			expectedLog: map[string]string{
				"level": "ERROR",
				"msg":   "failed to get chat reply",
				"error": "failed to get chat reply: anthropic generation failed: 529",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			replier := new(mockChatReplier)
			handler := NewChatHandler(replier, slog.New(slog.NewJSONHandler(&buf, nil)))

			if tc.expectReply {
				replier.On("Reply", mock.Anything, mock.AnythingOfType("string")).Return(tc.reply, tc.replyError)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(
				w,
				httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(tc.requestBody)),
			)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedResponse, w.Body.String())

			if tc.expectedLog != nil {
				log := buf.String()
				for k, v := range tc.expectedLog {
					assert.Contains(t, log, fmt.Sprintf("%q:%q", k, v))
				}
			}

			if !tc.expectReply {
				replier.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything)
			}
		})
	}
}
