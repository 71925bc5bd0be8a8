// internal/app/features/posts/status.go
package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	poststore "github.com/postdeck/postdeck/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type setStatusBody struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /api/posts/{id}/status: flips a post between
// pending and posted. Posting stamps posted_at; reverting removes it.
// Status changes are independent of content edits.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var body setStatusBody
	if err := httpjson.Decode(w, r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Posts.SetStatus(ctx, id, body.Status)
	if err != nil {
		if errors.Is(err, poststore.ErrInvalidStatus) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("post status update failed",
			zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w, err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":       "post status updated",
		"modifiedCount": modified,
	})
}
