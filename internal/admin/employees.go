package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/filter"
)

type employeeListView struct {
	Query        string
	Department   string
	Departments  []dto.DepartmentResponse
	Employees    []dto.EmployeeResponse
	Summary      string
	EmptyMessage string
}

type employeeFormView struct {
	ID           int64
	FirstName    string
	LastName     string
	DepartmentID string
	Departments  []dto.DepartmentResponse
	Error        string
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")
	department := r.URL.Query().Get("department")
	if department == "" {
		department = filter.DepartmentAll
	}

	flash := popFlash(w, r)

	employees, err := h.api.ListEmployees(ctx)
	if err != nil {
		h.logger.Error("failed to fetch employees", slog.Any("error", err))
		flash = h.fetchError(err, "employees")
	}

	departments, err := h.api.ListDepartments(ctx)
	if err != nil {
		h.logger.Error("failed to fetch departments", slog.Any("error", err))
	}

	view := employeeListView{
		Query:       query,
		Department:  department,
		Departments: departments,
		Employees:   filter.Employees(employees, query, department),
	}

	if query != "" || department != filter.DepartmentAll {
		view.Summary = filter.Summary(len(view.Employees), len(employees), "employees", query, filter.DepartmentScope(department, departments))
	}

	if len(employees) == 0 {
		view.EmptyMessage = "No employees found. Add your first employee to get started."
	} else {
		view.EmptyMessage = "No employees match your search criteria. Try adjusting your filters."
	}

	h.render(w, http.StatusOK, "employees", page{Title: "Employees", Tab: "employees", Flash: flash, Data: view})
}

func (h *Handler) newEmployee(w http.ResponseWriter, r *http.Request) {
	view := employeeFormView{
		DepartmentID: filter.DepartmentNone,
		Departments:  h.departmentsForForm(r),
	}
	h.render(w, http.StatusOK, "employee_form", page{Title: "Add Employee", Tab: "employees", Data: view})
}

func (h *Handler) editEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	emp, err := h.api.GetEmployee(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch employee", slog.Int64("employee_id", id), slog.Any("error", err))
		flash := h.fetchError(err, "employee")
		if client.IsNotFound(err) {
			flash.Message = "Employee not found"
		}
		h.redirect(w, r, "/employees", *flash)
		return
	}

	view := employeeFormView{
		ID:           emp.EmployeeID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		DepartmentID: filter.DepartmentNone,
		Departments:  h.departmentsForForm(r),
	}
	if emp.Department != nil {
		view.DepartmentID = strconv.FormatInt(emp.Department.DepartmentID, 10)
	}

	h.render(w, http.StatusOK, "employee_form", page{Title: "Edit Employee", Tab: "employees", Data: view})
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	h.saveEmployee(w, r, 0)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.saveEmployee(w, r, id)
}

// saveEmployee создаёт (id == 0) или обновляет сотрудника.
// При ошибке форма показывается снова с введёнными значениями.
func (h *Handler) saveEmployee(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	view := employeeFormView{
		ID:           id,
		FirstName:    r.PostForm.Get("firstName"),
		LastName:     r.PostForm.Get("lastName"),
		DepartmentID: r.PostForm.Get("departmentId"),
	}
	if view.DepartmentID == "" {
		view.DepartmentID = filter.DepartmentNone
	}

	req := dto.EmployeeRequest{
		FirstName: view.FirstName,
		LastName:  view.LastName,
	}
	if deptID, err := strconv.ParseInt(view.DepartmentID, 10, 64); err == nil {
		req.DepartmentID = &deptID
	}
	req.Normalize()

	title := "Add Employee"
	if id != 0 {
		title = "Edit Employee"
	}

	if err := h.validator.Struct(&req); err != nil {
		view.Error = validationMessage(err)
		view.Departments = h.departmentsForForm(r)
		h.render(w, http.StatusUnprocessableEntity, "employee_form", page{Title: title, Tab: "employees", Data: view})
		return
	}

	var err error
	if id == 0 {
		err = h.api.CreateEmployee(r.Context(), req)
	} else {
		err = h.api.UpdateEmployee(r.Context(), id, req)
	}
	if err != nil {
		h.logger.Error("failed to save employee", slog.Int64("employee_id", id), slog.Any("error", err))
		view.Error = saveErrorMessage(err, "employee")
		view.Departments = h.departmentsForForm(r)
		h.render(w, http.StatusBadGateway, "employee_form", page{Title: title, Tab: "employees", Data: view})
		return
	}

	msg := "Employee created successfully"
	if id != 0 {
		msg = "Employee updated successfully"
	}
	h.redirect(w, r, "/employees", Flash{Kind: FlashSuccess, Title: "Success", Message: msg})
}

func (h *Handler) confirmDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	view := confirmView{
		Heading:  "Delete Employee",
		Question: "Are you sure you want to delete this employee?",
		Action:   "/employees/" + strconv.FormatInt(id, 10) + "/delete",
		Cancel:   "/employees",
	}
	h.render(w, http.StatusOK, "confirm", page{Title: "Delete Employee", Tab: "employees", Data: view})
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/employees/"+strconv.FormatInt(id, 10)+"/delete", http.StatusSeeOther)
		return
	}

	if err := h.api.DeleteEmployee(r.Context(), id); err != nil {
		h.logger.Error("failed to delete employee", slog.Int64("employee_id", id), slog.Any("error", err))
		h.redirect(w, r, "/employees", deleteErrorFlash(err, "employee"))
		return
	}

	h.redirect(w, r, "/employees", Flash{Kind: FlashSuccess, Title: "Success", Message: "Employee deleted successfully"})
}

// departmentsForForm загружает подразделения для выпадающего списка.
// Ошибка не критична: форму можно сохранить и без подразделения.
func (h *Handler) departmentsForForm(r *http.Request) []dto.DepartmentResponse {
	departments, err := h.api.ListDepartments(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch departments", slog.Any("error", err))
		return nil
	}
	return departments
}
