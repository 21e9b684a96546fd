package invoices

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/invoices", h.List)
	r.Get("/invoices/{id}", h.Get)
	r.Post("/invoices", h.Create)
	r.Get("/invoices/{id}/pdf", h.PDF)
}
