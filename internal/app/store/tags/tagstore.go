package tagstore

import (
	"context"
	"time"

	"github.com/postdeck/postdeck/internal/app/system/normalize"
	"github.com/postdeck/postdeck/internal/app/system/sanitize"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tags")}
}

// Create inserts a new tag. Tags are insert-only; there is no update or
// delete surface.
func (s *Store) Create(ctx context.Context, t models.Tag) (models.Tag, error) {
	t.ID = primitive.NewObjectID()
	t.Account = normalize.Account(t.Account)
	t.Label = sanitize.Text(t.Label)
	t.CreatedBy = normalize.Email(t.CreatedBy)
	t.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Tag{}, err
	}
	return t, nil
}
