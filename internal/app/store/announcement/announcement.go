// internal/app/store/announcement/announcement.go
package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/dates"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotModified is returned by Update when the collection reports neither a
// match nor a modification for an id that was just confirmed to exist. Under
// correct Mongo semantics this should not occur; callers treat it as a store
// inconsistency rather than a caller error.
var ErrNotModified = errors.New("announcement update matched and modified nothing")

// Store persists announcements in the "announcements" collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// List returns announcements sorted by created_at descending. When
// activeOnly is set, only announcements active on today's local calendar
// date are returned: not yet expired, and either without a start date or
// already started. The filter runs in Mongo; date fields are YYYY-MM-DD
// strings, so $gte/$lte compare chronologically.
func (s *Store) List(ctx context.Context, activeOnly bool) ([]models.Announcement, error) {
	filter := bson.M{}
	if activeOnly {
		today := dates.Today()
		filter = bson.M{
			"expiration_date": bson.M{"$gte": today},
			"$or": []bson.M{
				{"start_date": bson.M{"$exists": false}},
				{"start_date": nil},
				{"start_date": bson.M{"$lte": today}},
			},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	anns := []models.Announcement{}
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// GetByID loads one announcement. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var ann models.Announcement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

// CreateInput holds the caller-supplied fields for a new announcement.
// Message must already be sanitized and trimmed; dates must already be
// validated. StartDate nil means open-ended.
type CreateInput struct {
	Message        string
	StartDate      *string
	ExpirationDate string
	CreatedBy      string
}

// Create inserts a new announcement, assigning its id and creation
// timestamp, and returns the stored record.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Announcement, error) {
	ann := models.Announcement{
		ID:             primitive.NewObjectID(),
		Message:        in.Message,
		StartDate:      in.StartDate,
		ExpirationDate: in.ExpirationDate,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now(),
	}

	if _, err := s.c.InsertOne(ctx, ann); err != nil {
		return models.Announcement{}, err
	}
	return ann, nil
}

// UpdateInput holds the replacement fields for an existing announcement.
// All three content fields are overwritten wholesale; there is no partial
// merge. A nil StartDate clears any stored start date.
type UpdateInput struct {
	Message        string
	StartDate      *string
	ExpirationDate string
	UpdatedBy      string
}

// Update overwrites message, start_date, and expiration_date, stamps
// updated_by/updated_at, and returns the document as stored after the
// write. created_by and created_at are untouched.
//
// Returns ErrNotModified when the write reports no match and no
// modification, which includes the case of an id that does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Announcement, error) {
	now := time.Now()
	set := bson.M{
		"message":         in.Message,
		"start_date":      in.StartDate,
		"expiration_date": in.ExpirationDate,
		"updated_by":      in.UpdatedBy,
		"updated_at":      now,
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 && res.ModifiedCount == 0 {
		return nil, ErrNotModified
	}

	// Return what the store holds, not what the caller sent.
	return s.GetByID(ctx, id)
}

// Delete permanently removes an announcement.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
