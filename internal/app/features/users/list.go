// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.uber.org/zap"
)

// ListPending handles GET /api/access-requests: all pending directory
// records, newest first. Admin only (enforced by the route gate).
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pending, err := h.Dir.ListPending(ctx)
	if err != nil {
		h.Log.Error("pending access request list failed", zap.Error(err))
		httpjson.Internal(w, err)
		return
	}
	if pending == nil {
		pending = []models.User{}
	}

	httpjson.Write(w, http.StatusOK, pending)
}
