package handlers

import (
	"net/http"

	apperrors "github.com/anonymous-sherlock/shopify-api/internal/pkg/errors"
	"github.com/anonymous-sherlock/shopify-api/internal/platform/database"
)

type HealthHandler struct {
	store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := h.store.DB.Ping(); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
	} else {
		checks["database"] = "healthy"
	}

	status := "healthy"
	for _, check := range checks {
		if len(check) >= 9 && check[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	apperrors.WriteJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}
