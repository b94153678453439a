// internal/app/features/announcements/handler.go
package announcements

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/store/announcement"
	teacherstore "github.com/dalemusser/campushub/internal/app/store/teachers"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AnnouncementStore is the persistence collaborator for announcements.
// *announcement.Store is the production implementation.
type AnnouncementStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Announcement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	Create(ctx context.Context, in announcement.CreateInput) (models.Announcement, error)
	Update(ctx context.Context, id primitive.ObjectID, in announcement.UpdateInput) (*models.Announcement, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TeacherDirectory gates write operations: a request is authorized iff the
// supplied teacher_username exists in the directory. This is an existence
// probe, not credential verification, and any known teacher may modify any
// announcement.
type TeacherDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Handler owns all announcement API handlers.
type Handler struct {
	Store    AnnouncementStore
	Teachers TeacherDirectory
	Log      *zap.Logger
}

// NewHandler constructs an announcements Handler backed by MongoDB.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    announcement.New(db),
		Teachers: teacherstore.New(db),
		Log:      logger,
	}
}
