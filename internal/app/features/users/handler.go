// Package users implements the user directory surface: submitting an
// access request, listing and approving pending requests, and the caller's
// own status snapshot.
package users

import (
	"context"

	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Directory is the slice of the user store this feature needs.
type Directory interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetBySubject(ctx context.Context, subjectID string) (*models.User, error)
	ListPending(ctx context.Context) ([]models.User, error)
	Approve(ctx context.Context, id primitive.ObjectID, approverEmail string) (matched, modified int64, err error)
}

// Handler serves the user directory routes.
type Handler struct {
	Dir Directory
	Log *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(dir Directory, logger *zap.Logger) *Handler {
	return &Handler{Dir: dir, Log: logger}
}
