package poststore

import (
	"context"
	"errors"
	"time"

	"github.com/postdeck/postdeck/internal/app/system/normalize"
	"github.com/postdeck/postdeck/internal/app/system/sanitize"
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
	return &Store{c: db.Collection("posts")}
}

// ErrInvalidStatus is returned by SetStatus for anything other than the
// two lifecycle states.
var ErrInvalidStatus = errors.New(`status must be "posted"|"pending"`)

// Create inserts a new pending post. Account and day are normalized and
// the free-form text fields are HTML-stripped before storage.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = primitive.NewObjectID()
	p.Account = normalize.Account(p.Account)
	p.Day = normalize.Day(p.Day)
	p.Caption = sanitize.Text(p.Caption)
	p.CTA = sanitize.Text(p.CTA)
	p.Source = sanitize.Text(p.Source)
	p.Hashtags = sanitize.Text(p.Hashtags)
	// DriveLink is a URL and stays verbatim; entity-escaping would corrupt
	// query strings.
	p.Status = models.PostStatusPending
	p.CreatedAt = time.Now().UTC()
	p.PostedAt = nil
	p.UpdatedAt = nil
	p.UpdatedBy = ""

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// List returns up to limit posts, newest first. A non-empty account
// restricts results to that account (normalized before filtering).
func (s *Store) List(ctx context.Context, account string, limit int64) ([]models.Post, error) {
	filter := bson.M{}
	if account != "" {
		filter["account"] = normalize.Account(account)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ContentUpdate holds the editable content fields. Nil pointers leave the
// stored value untouched; this is the whole whitelist, so nothing else on
// the document can be changed through an edit.
type ContentUpdate struct {
	Account   *string
	Day       *string
	Caption   *string
	CTA       *string
	Source    *string
	Hashtags  *string
	DriveLink *string
}

// UpdateContent applies a whitelisted content edit and stamps
// updated_at/updated_by with the editor.
func (s *Store) UpdateContent(ctx context.Context, id primitive.ObjectID, upd ContentUpdate, editorEmail string) (matched, modified int64, err error) {
	set := bson.M{
		"updated_at": time.Now().UTC(),
		"updated_by": normalize.Email(editorEmail),
	}
	if upd.Account != nil {
		set["account"] = normalize.Account(*upd.Account)
	}
	if upd.Day != nil {
		set["day"] = normalize.Day(*upd.Day)
	}
	if upd.Caption != nil {
		set["caption"] = sanitize.Text(*upd.Caption)
	}
	if upd.CTA != nil {
		set["cta"] = sanitize.Text(*upd.CTA)
	}
	if upd.Source != nil {
		set["source"] = sanitize.Text(*upd.Source)
	}
	if upd.Hashtags != nil {
		set["hashtags"] = sanitize.Text(*upd.Hashtags)
	}
	if upd.DriveLink != nil {
		set["drive_link"] = *upd.DriveLink
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// SetStatus flips a post between pending and posted. Moving to posted
// stamps posted_at; moving back removes the field entirely (absent, not
// null). Both directions are freely re-triggerable.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (matched, modified int64, err error) {
	var update bson.M
	switch status {
	case models.PostStatusPosted:
		update = bson.M{"$set": bson.M{
			"status":    models.PostStatusPosted,
			"posted_at": time.Now().UTC(),
		}}
	case models.PostStatusPending:
		update = bson.M{
			"$set":   bson.M{"status": models.PostStatusPending},
			"$unset": bson.M{"posted_at": ""},
		}
	default:
		return 0, 0, ErrInvalidStatus
	}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
