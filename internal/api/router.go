package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/anonymous-sherlock/shopify-api/internal/api/handlers"
	"github.com/anonymous-sherlock/shopify-api/internal/api/middleware"
)

type Dependencies struct {
	WebhookHandler *handlers.WebhookHandler
	HealthHandler  *handlers.HealthHandler
	CORS           *middleware.CORS
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	router.POST("/webhook",
		wrap(chain(deps.WebhookHandler.Handle, middleware.RequestLogger, deps.CORS.Handle)))
	router.GET("/health",
		wrap(chain(deps.HealthHandler.Check, deps.CORS.Handle)))

	// Preflight for the webhook endpoint
	router.OPTIONS("/webhook", wrap(deps.CORS.Handle(func(w http.ResponseWriter, r *http.Request) {})))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handler(w, r)
	}
}
