// Package tags implements the account-scoped label surface. Admin only,
// insert only.
package tags

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.uber.org/zap"
)

// TagStore is the slice of the tag store this feature needs.
type TagStore interface {
	Create(ctx context.Context, t models.Tag) (models.Tag, error)
}

// Handler serves the tag routes.
type Handler struct {
	Tags TagStore
	Log  *zap.Logger
}

// NewHandler constructs a tags Handler.
func NewHandler(tags TagStore, logger *zap.Logger) *Handler {
	return &Handler{Tags: tags, Log: logger}
}

type createTagBody struct {
	Account string `json:"account"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// Create handles POST /api/tags.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	creator, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body createTagBody
	if err := httpjson.Decode(w, r, &body); err != nil {
		if errors.Is(err, httpjson.ErrEmptyBody) {
			httpjson.Error(w, http.StatusBadRequest, "missing tag body")
			return
		}
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(body.Account) == "" {
		httpjson.Error(w, http.StatusBadRequest, "tag requires account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Tags.Create(ctx, models.Tag{
		Account:   body.Account,
		Label:     body.Label,
		Color:     body.Color,
		CreatedBy: creator.Email,
	})
	if err != nil {
		h.Log.Error("tag insert failed", zap.Error(err))
		httpjson.Internal(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{
		"insertedId": created.ID.Hex(),
	})
}
