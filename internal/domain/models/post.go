// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post statuses. A post starts pending, flips to posted when it goes out,
// and may be reverted; both directions are freely re-triggerable.
const (
	PostStatusPending = "pending"
	PostStatusPosted  = "posted"
)

// Post is one scheduled content item. Account and Day are stored trimmed
// and lowercased. PostedAt exists only while Status is posted; reverting to
// pending removes the field entirely.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account   string             `bson:"account" json:"account"`
	Day       string             `bson:"day" json:"day"`
	Caption   string             `bson:"caption,omitempty" json:"caption,omitempty"`
	CTA       string             `bson:"cta,omitempty" json:"cta,omitempty"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	DriveLink string             `bson:"drive_link,omitempty" json:"drive_link,omitempty"`
	Hashtags  string             `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	Status    string             `bson:"status" json:"status"` // pending | posted

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	PostedAt  *time.Time `bson:"posted_at,omitempty" json:"posted_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
