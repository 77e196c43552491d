package rest

import (
	"log/slog"
	"net/http"

	"github.com/startright-uk/startright/internal/api/rest/handlers"
	"github.com/startright-uk/startright/internal/api/rest/middlewares"
)

const (
	OrderPath      = "/api/submit-chat"
	OrderAliasPath = "/api/orders"
	ChatPath       = "/api/chat"
	ServicesPath   = "/api/services"
	HealthPath     = "/health"
)

type RouterConfig struct {
	OrderHandler    http.Handler
	ChatHandler     http.Handler
	ServicesHandler http.Handler
	Logger          *slog.Logger
}

// NewMuxWithHandlers initializes a new HTTP mux with routes defined by the given RouterConfig.
// POST-only routes are registered without a method pattern so that other methods get a JSON 405.
func NewMuxWithHandlers(cfg *RouterConfig) http.Handler {
	router := http.NewServeMux()
	postOnly := middlewares.NewAllowMethodMiddleware(http.MethodPost)

	router.Handle(OrderPath, postOnly.Handle(cfg.OrderHandler))
	router.Handle(OrderAliasPath, postOnly.Handle(cfg.OrderHandler))
	router.Handle(ChatPath, postOnly.Handle(cfg.ChatHandler))
	router.Handle("GET "+ServicesPath, cfg.ServicesHandler)
	router.HandleFunc("GET "+HealthPath, handlers.HealthHandler)

	return middlewares.Chain(router, middlewares.NewRequestLoggerMiddleware(cfg.Logger))
}
