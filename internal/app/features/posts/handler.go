// Package posts implements the scheduled-content surface: draft ingest,
// listing for approved callers, whitelisted content edits, and the
// posted/pending status toggle.
package posts

import (
	"context"

	poststore "github.com/postdeck/postdeck/internal/app/store/posts"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PostStore is the slice of the post store this feature needs.
type PostStore interface {
	Create(ctx context.Context, p models.Post) (models.Post, error)
	List(ctx context.Context, account string, limit int64) ([]models.Post, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, upd poststore.ContentUpdate, editorEmail string) (matched, modified int64, err error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (matched, modified int64, err error)
}

// Handler serves the post routes.
type Handler struct {
	Posts     PostStore
	ListLimit int
	Log       *zap.Logger
}

// NewHandler constructs a posts Handler. listLimit caps GET /api/posts.
func NewHandler(posts PostStore, listLimit int, logger *zap.Logger) *Handler {
	return &Handler{Posts: posts, ListLimit: listLimit, Log: logger}
}
