// internal/app/features/posts/create.go
package posts

import (
	"context"
	"net/http"
	"strings"

	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/app/system/timeouts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.uber.org/zap"
)

type createPostBody struct {
	Account   string `json:"account"`
	Day       string `json:"day"`
	Caption   string `json:"caption"`
	CTA       string `json:"cta"`
	Source    string `json:"source"`
	DriveLink string `json:"driveLink"`
	Hashtags  string `json:"hashtags"`
}

// Create handles POST /api/posts. Account and day are required; the store
// normalizes both and the new post starts pending.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body createPostBody
	if err := httpjson.Decode(w, r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing post body")
		return
	}

	if strings.TrimSpace(body.Account) == "" || strings.TrimSpace(body.Day) == "" {
		httpjson.Error(w, http.StatusBadRequest, "post requires account and day")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Posts.Create(ctx, models.Post{
		Account:   body.Account,
		Day:       body.Day,
		Caption:   body.Caption,
		CTA:       body.CTA,
		Source:    body.Source,
		DriveLink: body.DriveLink,
		Hashtags:  body.Hashtags,
	})
	if err != nil {
		h.Log.Error("post insert failed", zap.Error(err))
		httpjson.Internal(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{
		"insertedId": created.ID.Hex(),
	})
}
