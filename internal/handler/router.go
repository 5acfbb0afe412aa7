package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-management/internal/middleware"
)

// resourceHandler - набор CRUD-операций над одной коллекцией
type resourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	corsOrigin  string
	empHandler  *EmployeeHandler
	deptHandler *DepartmentHandler
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, deptHandler *DepartmentHandler, corsOrigin string, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		corsOrigin:  corsOrigin,
		empHandler:  empHandler,
		deptHandler: deptHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	employees := r.resourceRouter("/employees", r.empHandler)
	departments := r.resourceRouter("/departments", r.deptHandler)

	r.mux.HandleFunc("/employees", employees)
	r.mux.HandleFunc("/employees/", employees)
	r.mux.HandleFunc("/departments", departments)
	r.mux.HandleFunc("/departments/", departments)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(r.corsOrigin)(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// resourceRouter разбирает путь коллекции: "", "count" или "{id}"
func (r *Router) resourceRouter(prefix string, h resourceHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimPrefix(req.URL.Path, prefix)
		path = strings.Trim(path, "/")

		switch {
		case path == "":
			switch req.Method {
			case http.MethodGet:
				h.List(w, req)
			case http.MethodPost:
				h.Create(w, req)
			default:
				http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			}

		case path == "count":
			if req.Method != http.MethodGet {
				http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
				return
			}
			h.Count(w, req)

		case !strings.Contains(path, "/"):
			switch req.Method {
			case http.MethodGet:
				h.GetByID(w, req)
			case http.MethodPut:
				h.Update(w, req)
			case http.MethodDelete:
				h.Delete(w, req)
			default:
				http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			}

		default:
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		}
	}
}
