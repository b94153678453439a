// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/campushub/internal/app/store/announcement"
	"github.com/dalemusser/campushub/internal/app/system/dates"
	"github.com/dalemusser/campushub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// announcementJSON is the wire representation of an announcement. The id is
// always the hex string form, never the raw ObjectID; timestamps are RFC
// 3339. start_date is null for open-ended announcements.
type announcementJSON struct {
	ID             string  `json:"id"`
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
	UpdatedBy      string  `json:"updated_by,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

func toJSON(ann models.Announcement) announcementJSON {
	out := announcementJSON{
		ID:             ann.ID.Hex(),
		Message:        ann.Message,
		StartDate:      ann.StartDate,
		ExpirationDate: ann.ExpirationDate,
		CreatedBy:      ann.CreatedBy,
		CreatedAt:      ann.CreatedAt.Format(time.RFC3339),
		UpdatedBy:      ann.UpdatedBy,
	}
	if ann.UpdatedAt != nil {
		out.UpdatedAt = ann.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// announcementRequest is the JSON body for create and update. start_date is
// optional; the other fields are validated by validateFields.
type announcementRequest struct {
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// authenticate resolves the teacher_username query parameter against the
// directory. On failure it writes the error response and returns ok=false.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := r.URL.Query().Get("teacher_username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	exists, err := h.Teachers.Exists(ctx, username)
	if err != nil {
		h.Log.Error("teacher directory lookup failed", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return "", false
	}
	if !exists {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return username, true
}

// validateFields checks dates and message and returns the message with any
// markup stripped and surrounding whitespace trimmed. Dates are checked
// before the message, matching the API's documented failure order.
func validateFields(w http.ResponseWriter, req announcementRequest) (string, bool) {
	if !dates.Valid(req.ExpirationDate) {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return "", false
	}
	if req.StartDate != nil && !dates.Valid(*req.StartDate) {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return "", false
	}

	msg := strings.TrimSpace(htmlsanitize.PlainText(req.Message))
	if msg == "" {
		respondError(w, http.StatusBadRequest, "Message cannot be empty")
		return "", false
	}
	return msg, true
}

// List handles GET /announcements. active_only defaults to true; an
// unparsable value falls back to the default rather than failing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("active_only"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			activeOnly = v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Store.List(ctx, activeOnly)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	out := make([]announcementJSON, 0, len(anns))
	for _, ann := range anns {
		out = append(out, toJSON(ann))
	}
	respond(w, http.StatusOK, out)
}

// Get handles GET /announcements/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ann, err := h.Store.GetByID(ctx, objID)
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "Announcement not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to get announcement", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(w, http.StatusOK, toJSON(*ann))
}

// Create handles POST /announcements.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, ok := validateFields(w, req)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, announcement.CreateInput{
		Message:        msg,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		CreatedBy:      username,
	})
	if err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(w, http.StatusOK, toJSON(created))
}

// Update handles PUT /announcements/{id}. The id is checked for syntax and
// existence before the body fields are validated; the three content fields
// are then replaced wholesale and the stored document is returned.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	objID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Store.GetByID(ctx, objID); err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to load announcement for update", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, ok := validateFields(w, req)
	if !ok {
		return
	}

	updated, err := h.Store.Update(ctx, objID, announcement.UpdateInput{
		Message:        msg,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		UpdatedBy:      username,
	})
	if err != nil {
		// The id existed a moment ago; a write that matches nothing is a
		// store inconsistency, not a caller error.
		h.Log.Error("failed to update announcement", zap.Error(err),
			zap.String("id", objID.Hex()), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Failed to update announcement")
		return
	}

	respond(w, http.StatusOK, toJSON(*updated))
}

// Delete handles DELETE /announcements/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authenticate(w, r); !ok {
		return
	}

	objID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Store.Delete(ctx, objID)
	if err != nil {
		h.Log.Error("failed to delete announcement", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if count == 0 {
		respondError(w, http.StatusNotFound, "Announcement not found")
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}
