// internal/app/features/users/me.go
package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// statusSnapshot is the caller-facing projection of a directory record.
type statusSnapshot struct {
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	Role          string     `json:"role,omitempty"`
	RequestedRole string     `json:"requestedRole,omitempty"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	Message       string     `json:"message,omitempty"`
}

// Me handles GET /api/users/me: the caller's own approval snapshot. A
// caller with no directory record gets a 404 sentinel telling them to
// submit an access request, not a hard error.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	record, err := h.Dir.GetBySubject(ctx, id.Subject)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Write(w, http.StatusNotFound, statusSnapshot{
				Email:   id.Email,
				Status:  "none",
				Message: "no access request on file; submit one first",
			})
			return
		}
		h.Log.Error("self lookup failed",
			zap.String("subject", id.Subject), zap.Error(err))
		httpjson.Internal(w, err)
		return
	}

	snap := statusSnapshot{
		Email:         record.Email,
		Status:        record.Status,
		Role:          record.Role,
		RequestedRole: record.RequestedRole,
		ApprovedAt:    record.ApprovedAt,
		ApprovedBy:    record.ApprovedBy,
	}
	if snap.Status == "" {
		snap.Status = models.StatusPending
	}
	if !record.CreatedAt.IsZero() {
		created := record.CreatedAt
		snap.CreatedAt = &created
	}

	httpjson.Write(w, http.StatusOK, snap)
}
