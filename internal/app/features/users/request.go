// internal/app/features/users/request.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	userstore "github.com/postdeck/postdeck/internal/app/store/users"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.uber.org/zap"
)

type accessRequestBody struct {
	Role string `json:"role"`
}

// RequestAccess handles POST /api/users. The caller asks for a role; the
// record starts pending and stays that way until an admin approves it.
// A subject gets at most one record; the unique index rejects a second.
func (h *Handler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body accessRequestBody
	if err := httpjson.Decode(w, r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !models.IsValidRole(body.Role) {
		httpjson.Error(w, http.StatusBadRequest, userstore.ErrInvalidRole.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Dir.Create(ctx, models.User{
		SubjectID:     id.Subject,
		Email:         id.Email,
		RequestedRole: body.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateSubject):
			httpjson.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, userstore.ErrInvalidRole):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.Log.Error("access request insert failed",
				zap.String("subject", id.Subject), zap.Error(err))
			httpjson.Internal(w, err)
		}
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message":    "access request submitted",
		"insertedId": created.ID.Hex(),
	})
}
