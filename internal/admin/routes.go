package admin

import (
	"net/http"

	"github.com/employee-management/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// Routes возвращает роутер интерфейса
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))

	r.Get("/", h.dashboard)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.listEmployees)
		r.Post("/", h.createEmployee)
		r.Get("/new", h.newEmployee)
		r.Get("/export.xlsx", h.exportEmployees)
		r.Get("/{id}/edit", h.editEmployee)
		r.Post("/{id}", h.updateEmployee)
		r.Get("/{id}/delete", h.confirmDeleteEmployee)
		r.Post("/{id}/delete", h.deleteEmployee)
	})

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.listDepartments)
		r.Post("/", h.createDepartment)
		r.Get("/new", h.newDepartment)
		r.Get("/{id}/edit", h.editDepartment)
		r.Post("/{id}", h.updateDepartment)
		r.Get("/{id}/delete", h.confirmDeleteDepartment)
		r.Post("/{id}/delete", h.deleteDepartment)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
