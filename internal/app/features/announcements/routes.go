// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// Routes returns the announcements subrouter. Reads are open; writes carry
// a teacher_username query parameter checked against the teacher directory.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
