package teacherstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads the teacher directory ("teachers" collection, keyed by
// username as _id). This service only ever asks whether a username exists;
// presence in the directory is what authorizes write operations on
// announcements. That is a capability check, not authentication proper.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// Exists reports whether a teacher with the exact username is present.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": username}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// GetByUsername loads a full directory entry.
// Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"_id": username}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Upsert creates or refreshes a directory entry. Used by startup seeding so
// a freshly provisioned deployment has at least one authorized teacher.
func (s *Store) Upsert(ctx context.Context, t models.Teacher) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": t.Username},
		bson.M{"$set": bson.M{"display_name": t.DisplayName}},
		options.Update().SetUpsert(true))
	return err
}
