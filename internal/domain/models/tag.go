// internal/domain/models/tag.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is an account-scoped label. Insert-only.
type Tag struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account string             `bson:"account" json:"account"`
	Label   string             `bson:"label,omitempty" json:"label,omitempty"`
	Color   string             `bson:"color,omitempty" json:"color,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
}
