// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a dated message broadcast to users, active within an
// optional date window. StartDate and ExpirationDate are calendar dates
// stored as "YYYY-MM-DD" strings so lexicographic comparison matches
// chronological order. A nil StartDate means the announcement is active
// from all time up to its expiration.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id"`
	Message        string             `bson:"message"`
	StartDate      *string            `bson:"start_date"`
	ExpirationDate string             `bson:"expiration_date"`
	CreatedBy      string             `bson:"created_by"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedBy      string             `bson:"updated_by,omitempty"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty"`
}
