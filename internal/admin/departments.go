package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/filter"
)

type departmentListView struct {
	Query        string
	Departments  []dto.DepartmentResponse
	Summary      string
	EmptyMessage string
}

type departmentFormView struct {
	ID             int64
	DepartmentName string
	ShortName      string
	Error          string
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	flash := popFlash(w, r)

	departments, err := h.api.ListDepartments(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch departments", slog.Any("error", err))
		flash = h.fetchError(err, "departments")
	}

	view := departmentListView{
		Query:       query,
		Departments: filter.Departments(departments, query),
	}
	if query != "" {
		view.Summary = filter.Summary(len(view.Departments), len(departments), "departments", query, "")
	}
	if len(departments) == 0 {
		view.EmptyMessage = "No departments found. Create your first department to get started."
	} else {
		view.EmptyMessage = "No departments match your search. Try a different search term."
	}

	h.render(w, http.StatusOK, "departments", page{Title: "Departments", Tab: "departments", Flash: flash, Data: view})
}

func (h *Handler) newDepartment(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "department_form", page{Title: "Add Department", Tab: "departments", Data: departmentFormView{}})
}

func (h *Handler) editDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	dept, err := h.api.GetDepartment(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch department", slog.Int64("department_id", id), slog.Any("error", err))
		flash := h.fetchError(err, "department")
		if client.IsNotFound(err) {
			flash.Message = "Department not found"
		}
		h.redirect(w, r, "/departments", *flash)
		return
	}

	view := departmentFormView{
		ID:             dept.DepartmentID,
		DepartmentName: dept.DepartmentName,
		ShortName:      dept.ShortName,
	}
	h.render(w, http.StatusOK, "department_form", page{Title: "Edit Department", Tab: "departments", Data: view})
}

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	h.saveDepartment(w, r, 0)
}

func (h *Handler) updateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.saveDepartment(w, r, id)
}

func (h *Handler) saveDepartment(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	view := departmentFormView{
		ID:             id,
		DepartmentName: r.PostForm.Get("departmentName"),
		ShortName:      r.PostForm.Get("shortName"),
	}

	req := dto.DepartmentRequest{
		DepartmentName: view.DepartmentName,
		ShortName:      view.ShortName,
	}
	req.Normalize()

	title := "Add Department"
	if id != 0 {
		title = "Edit Department"
	}

	if err := h.validator.Struct(&req); err != nil {
		view.Error = validationMessage(err)
		h.render(w, http.StatusUnprocessableEntity, "department_form", page{Title: title, Tab: "departments", Data: view})
		return
	}

	var err error
	if id == 0 {
		err = h.api.CreateDepartment(r.Context(), req)
	} else {
		err = h.api.UpdateDepartment(r.Context(), id, req)
	}
	if err != nil {
		h.logger.Error("failed to save department", slog.Int64("department_id", id), slog.Any("error", err))
		view.Error = saveErrorMessage(err, "department")
		h.render(w, http.StatusBadGateway, "department_form", page{Title: title, Tab: "departments", Data: view})
		return
	}

	msg := "Department created successfully"
	if id != 0 {
		msg = "Department updated successfully"
	}
	h.redirect(w, r, "/departments", Flash{Kind: FlashSuccess, Title: "Success", Message: msg})
}

func (h *Handler) confirmDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	view := confirmView{
		Heading:  "Delete Department",
		Question: "Are you sure you want to delete this department? Employees in it will be left without a department.",
		Action:   "/departments/" + strconv.FormatInt(id, 10) + "/delete",
		Cancel:   "/departments",
	}
	h.render(w, http.StatusOK, "confirm", page{Title: "Delete Department", Tab: "departments", Data: view})
}

func (h *Handler) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/departments/"+strconv.FormatInt(id, 10)+"/delete", http.StatusSeeOther)
		return
	}

	if err := h.api.DeleteDepartment(r.Context(), id); err != nil {
		h.logger.Error("failed to delete department", slog.Int64("department_id", id), slog.Any("error", err))
		h.redirect(w, r, "/departments", deleteErrorFlash(err, "department"))
		return
	}

	h.redirect(w, r, "/departments", Flash{Kind: FlashSuccess, Title: "Success", Message: "Department deleted successfully"})
}
