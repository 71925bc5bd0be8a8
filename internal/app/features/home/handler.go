package home

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the liveness root route.
type Handler struct {
	Log *zap.Logger
}

// NewHandler creates a new home handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET /: a plain-text liveness message for anyone poking the
// base URL.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("postdeck is running"))
}
