package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateTeacher inserts a teacher directory entry keyed by username.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		Username:    username,
		DisplayName: displayName,
	}

	_, err := f.db.Collection("teachers").InsertOne(ctx, teacher)
	if err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}

	return teacher
}

// CreateAnnouncement inserts an announcement created by the given teacher.
// startDate may be nil for an open-ended window.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message string, startDate *string, expirationDate, createdBy string) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		ID:             primitive.NewObjectID(),
		Message:        message,
		StartDate:      startDate,
		ExpirationDate: expirationDate,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := f.db.Collection("announcements").InsertOne(ctx, ann)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return ann
}
