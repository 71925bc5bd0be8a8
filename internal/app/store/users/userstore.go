package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/postdeck/postdeck/internal/app/system/normalize"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateSubject is returned when the subject already has a
	// directory record. Enforced by the unique index on subject_id, so
	// concurrent requests cannot slip a duplicate past a pre-check.
	ErrDuplicateSubject = errors.New("an access request already exists for this subject")

	// ErrInvalidRole is returned when the requested role is not assignable.
	ErrInvalidRole = errors.New(`requested role must be "creator"|"publisher"|"admin"`)
)

// GetBySubject loads the directory record for a subject identity.
// Returns mongo.ErrNoDocuments if the subject has no record.
func (s *Store) GetBySubject(ctx context.Context, subjectID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"subject_id": subjectID}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new pending directory record after normalizing and
// validating fields. Role stays unset until approval.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.Status = models.StatusPending
	u.Role = ""
	u.ApprovedAt = nil
	u.ApprovedBy = ""
	u.CreatedAt = time.Now().UTC()

	if !models.IsValidRole(u.RequestedRole) {
		return models.User{}, ErrInvalidRole
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateSubject
		}
		return models.User{}, err
	}
	return u, nil
}

// ListPending returns all pending records, newest first.
func (s *Store) ListPending(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.StatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Approve marks the record approved and copies requested_role into role in
// a single pipeline update, so the read-then-write the approval used to
// need cannot lose a concurrent change. Re-approving an approved record is
// idempotent for status/role and refreshes the approval stamps.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID, approverEmail string) (matched, modified int64, err error) {
	res, err := s.c.UpdateByID(ctx, id, bson.A{
		bson.M{"$set": bson.M{
			"status":      models.StatusApproved,
			"role":        "$requested_role",
			"approved_at": time.Now().UTC(),
			"approved_by": normalize.Email(approverEmail),
		}},
	})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
