package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/service"
	"github.com/go-playground/validator/v10"
)

type DepartmentHandler struct {
	responder
	deptService service.DepartmentService
	validator   *validator.Validate
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		responder:   responder{logger: logger},
		deptService: deptService,
		validator:   validator.New(),
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		resp[i] = *toDepartmentResponse(&departments[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.deptService.Count(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, count)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if _, err := h.deptService.Create(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondText(w, http.StatusCreated, "department created")
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.DepartmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if _, err := h.deptService.Update(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, "department updated")
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, "department deleted")
}
