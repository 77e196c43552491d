package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/startright-uk/startright/internal/api/rest/response"
)

const (
	emptyMessageMessage  = "message is required"
	failedToReplyMessage = "Failed to get reply"
)

// ChatReplier answers a single chat message.
type ChatReplier interface {
	Reply(ctx context.Context, message string) (string, error)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler relays chat widget messages to the assistant.
type ChatHandler struct {
	replier ChatReplier
	logger  *slog.Logger
}

// ServeHTTP answers one message. No conversation state is kept between requests.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := new(ChatRequest)
	if err := response.DecodeJSON(w, r, req); err != nil {
		response.JSONErrorResponse(w, http.StatusBadRequest, response.InvalidRequestBodyMessage)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		response.JSONErrorResponse(w, http.StatusBadRequest, emptyMessageMessage)
		return
	}

	reply, err := h.replier.Reply(r.Context(), req.Message)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get chat reply", "error", err)
		response.JSONErrorResponse(w, http.StatusInternalServerError, failedToReplyMessage)
		return
	}

	response.JSONResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

// NewChatHandler creates a new HTTP handler for the chat widget.
func NewChatHandler(replier ChatReplier, logger *slog.Logger) http.Handler {
	return &ChatHandler{
		replier: replier,
		logger:  logger,
	}
}
