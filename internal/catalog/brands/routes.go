package brands

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/brands", h.List)
	r.Get("/brands/{id}", h.Get)
	r.Post("/brands", h.Create)
	r.Put("/brands/{id}", h.Update)
	r.Delete("/brands/{id}", h.Delete)
}
