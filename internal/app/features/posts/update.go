// internal/app/features/posts/update.go
package posts

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	poststore "github.com/postdeck/postdeck/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// updatePostBody mirrors the editable whitelist. Absent fields stay nil
// and leave the stored value untouched; unknown fields are ignored, so the
// lifecycle fields (status, timestamps) cannot be edited through here.
type updatePostBody struct {
	Account   *string `json:"account"`
	Day       *string `json:"day"`
	Caption   *string `json:"caption"`
	CTA       *string `json:"cta"`
	Source    *string `json:"source"`
	Hashtags  *string `json:"hashtags"`
	DriveLink *string `json:"driveLink"`
}

// Update handles PATCH /api/posts/{id}: a whitelisted content edit stamped
// with the editor's email. Admin or creator only (enforced by the route
// gate).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	editor, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body updatePostBody
	if err := httpjson.Decode(w, r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Account == nil && body.Day == nil && body.Caption == nil &&
		body.CTA == nil && body.Source == nil && body.Hashtags == nil &&
		body.DriveLink == nil {
		httpjson.Error(w, http.StatusBadRequest, "update requires at least one editable field")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Posts.UpdateContent(ctx, id, poststore.ContentUpdate{
		Account:   body.Account,
		Day:       body.Day,
		Caption:   body.Caption,
		CTA:       body.CTA,
		Source:    body.Source,
		Hashtags:  body.Hashtags,
		DriveLink: body.DriveLink,
	}, editor.Email)
	if err != nil {
		h.Log.Error("post update failed",
			zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w, err)
		return
	}

	// The outcome is reported as-is: an id that matched nothing comes back
	// as matchedCount 0, not an error.
	httpjson.Write(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
