package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/startright-uk/startright/internal/api/rest/middlewares"
	"github.com/startright-uk/startright/internal/api/rest/response"
	"github.com/startright-uk/startright/internal/order"
)

const failedToProcessMessage = "Failed to process"

// OrderProcessor runs the order pipeline for a submitted order.
type OrderProcessor interface {
	Process(ctx context.Context, o *order.Order) error
}

// OrderHandler accepts checkout submissions and hands them to the order pipeline.
type OrderHandler struct {
	processor OrderProcessor
	logger    *slog.Logger
}

// ServeHTTP decodes the order and processes it. Any pipeline failure is reported as a generic 500.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	o := new(order.Order)
	if err := response.DecodeJSON(w, r, o); err != nil {
		response.JSONErrorResponse(w, http.StatusBadRequest, response.InvalidRequestBodyMessage)
		return
	}

	requestID, _ := middlewares.GetRequestIDFromContext(r.Context())
	if err := h.processor.Process(r.Context(), o); err != nil {
		h.logger.ErrorContext(
			r.Context(),
			"failed to process order",
			"error", err,
			"request_id", requestID,
			"product", string(o.Product),
		)
		response.JSONErrorResponse(w, http.StatusInternalServerError, failedToProcessMessage)
		return
	}

	response.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// NewOrderHandler creates a new HTTP handler for order submissions.
func NewOrderHandler(processor OrderProcessor, logger *slog.Logger) http.Handler {
	return &OrderHandler{
		processor: processor,
		logger:    logger,
	}
}
