// internal/app/features/users/approve.go
package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Approve handles PATCH /api/access-requests/{id}/approve. The record's
// role becomes its requested role and the approval is stamped with the
// approving admin's email. Approval is a one-way transition; there is no
// revoke surface.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	approver, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Dir.Approve(ctx, id, approver.Email)
	if err != nil {
		h.Log.Error("access request approval failed",
			zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w, err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "access request not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
