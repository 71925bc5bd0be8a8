// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"

	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.uber.org/zap"
)

// List handles GET /api/posts: the most recent posts, newest first, capped
// at the configured limit. An optional account query parameter restricts
// results to one account. Requires an approved caller of any role
// (enforced by the route gate).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.List(ctx, account, int64(h.ListLimit))
	if err != nil {
		h.Log.Error("post list failed", zap.Error(err))
		httpjson.Internal(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	httpjson.Write(w, http.StatusOK, posts)
}
