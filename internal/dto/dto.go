package dto

import (
	"strings"
)

// DepartmentRequest - тело запроса на создание или обновление подразделения
type DepartmentRequest struct {
	ShortName      string `json:"shortName" validate:"required,max=10"`
	DepartmentName string `json:"departmentName" validate:"required,max=100"`
}

// Normalize убирает пробелы по краям полей
func (r *DepartmentRequest) Normalize() {
	r.ShortName = strings.TrimSpace(r.ShortName)
	r.DepartmentName = strings.TrimSpace(r.DepartmentName)
}

// EmployeeRequest - тело запроса на создание или обновление сотрудника.
// DepartmentID == nil означает «без подразделения».
type EmployeeRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	DepartmentID *int64 `json:"departmentId"`
}

// Normalize убирает пробелы по краям полей
func (r *EmployeeRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	DepartmentID   int64  `json:"departmentId"`
	ShortName      string `json:"shortName"`
	DepartmentName string `json:"departmentName"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	EmployeeID int64               `json:"employeeID"`
	FirstName  string              `json:"firstName"`
	LastName   string              `json:"lastName"`
	Department *DepartmentResponse `json:"department"`
}

// FullName возвращает имя и фамилию через пробел
func (e EmployeeResponse) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
