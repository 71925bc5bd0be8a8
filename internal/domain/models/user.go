// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a directory record tracking a subject's requested and approved
// role. SubjectID comes from the identity-token verifier and is immutable,
// as is RequestedRole. Role is set equal to RequestedRole exactly once the
// record is approved; it stays empty while the record is pending.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubjectID     string             `bson:"subject_id" json:"subject_id"`
	Email         string             `bson:"email" json:"email"`
	RequestedRole string             `bson:"requested_role" json:"requested_role"`
	Status        string             `bson:"status" json:"status"` // pending | approved
	Role          string             `bson:"role,omitempty" json:"role,omitempty"`

	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	ApprovedAt *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	ApprovedBy string     `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
}
