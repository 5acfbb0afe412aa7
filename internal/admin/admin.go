// Package admin реализует веб-интерфейс администратора: списки сотрудников
// и подразделений с поиском, формы создания и редактирования, дашборд.
// Все данные берутся из REST API, локально ничего не хранится.
package admin

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"dashboard",
	"employees",
	"employee_form",
	"departments",
	"department_form",
	"confirm",
}

// Backend - операции REST API, которые использует интерфейс
type Backend interface {
	ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (*dto.EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) error
	UpdateEmployee(ctx context.Context, id int64, req dto.EmployeeRequest) error
	DeleteEmployee(ctx context.Context, id int64) error
	CountEmployees(ctx context.Context) (int64, error)

	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req dto.DepartmentRequest) error
	UpdateDepartment(ctx context.Context, id int64, req dto.DepartmentRequest) error
	DeleteDepartment(ctx context.Context, id int64) error
	CountDepartments(ctx context.Context) (int64, error)
}

// Handler обслуживает страницы интерфейса
type Handler struct {
	api       Backend
	apiBase   string
	pages     map[string]*template.Template
	validator *validator.Validate
	logger    *slog.Logger
}

// page - данные общего макета страницы
type page struct {
	Title string
	Tab   string
	Flash *Flash
	Data  any
}

// NewHandler создаёт обработчик и разбирает встроенные шаблоны
func NewHandler(api Backend, apiBase string, logger *slog.Logger) (*Handler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		api:       api,
		apiBase:   apiBase,
		pages:     pages,
		validator: validator.New(),
		logger:    logger,
	}, nil
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, p page) {
	tmpl, ok := h.pages[name]
	if !ok {
		h.logger.Error("unknown template", slog.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		h.logger.Error("failed to render template", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write response", slog.Any("error", err))
	}
}

// redirect уводит браузер на страницу списка, которая заново загрузит данные
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to string, flash Flash) {
	setFlash(w, flash)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fetchError превращает ошибку загрузки списка в уведомление
func (h *Handler) fetchError(err error, what string) *Flash {
	if errors.Is(err, client.ErrUnavailable) {
		return &Flash{
			Kind:    FlashError,
			Title:   "Connection Error",
			Message: "Could not connect to the server. Please ensure the API is running on " + h.apiBase,
		}
	}
	return &Flash{Kind: FlashError, Title: "Error", Message: "Failed to fetch " + what}
}

// saveErrorMessage возвращает текст ошибки сохранения для формы
func saveErrorMessage(err error, what string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Failed to save " + what
	}
	return "Could not save " + what
}

// deleteErrorFlash возвращает уведомление о неудачном удалении
func deleteErrorFlash(err error, what string) Flash {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return Flash{Kind: FlashError, Title: "Error", Message: "Failed to delete " + what}
	}
	return Flash{Kind: FlashError, Title: "Error", Message: "Could not delete " + what}
}

// validationMessage собирает читаемый текст из ошибок валидатора
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldLabels[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

var fieldLabels = map[string]string{
	"FirstName":      "First name",
	"LastName":       "Last name",
	"ShortName":      "Short name",
	"DepartmentName": "Department name",
}

// pathID разбирает {id} из маршрута
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// confirmView - страница подтверждения удаления
type confirmView struct {
	Heading  string
	Question string
	Action   string
	Cancel   string
}
