// Package filter отбирает сотрудников и подразделения по строке поиска.
// Сравнение регистронезависимое, по вхождению подстроки.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-management/internal/dto"
)

// Значения фильтра по подразделению
const (
	DepartmentAll  = "all"
	DepartmentNone = "none"
)

// Employees возвращает сотрудников, подходящих под запрос и фильтр по подразделению.
// department: "all", "none" (без подразделения) или идентификатор подразделения.
func Employees(employees []dto.EmployeeResponse, query, department string) []dto.EmployeeResponse {
	q := strings.ToLower(query)
	result := make([]dto.EmployeeResponse, 0, len(employees))

	for _, emp := range employees {
		if matchesEmployee(emp, q) && inDepartment(emp, department) {
			result = append(result, emp)
		}
	}
	return result
}

func matchesEmployee(emp dto.EmployeeResponse, q string) bool {
	if q == "" {
		return true
	}
	if contains(emp.FirstName, q) || contains(emp.LastName, q) {
		return true
	}
	if emp.Department != nil {
		return contains(emp.Department.DepartmentName, q) || contains(emp.Department.ShortName, q)
	}
	return false
}

func inDepartment(emp dto.EmployeeResponse, department string) bool {
	switch department {
	case "", DepartmentAll:
		return true
	case DepartmentNone:
		return emp.Department == nil
	default:
		return emp.Department != nil && strconv.FormatInt(emp.Department.DepartmentID, 10) == department
	}
}

// Departments возвращает подразделения, у которых название, короткое имя
// или идентификатор содержат запрос.
func Departments(departments []dto.DepartmentResponse, query string) []dto.DepartmentResponse {
	q := strings.ToLower(query)
	result := make([]dto.DepartmentResponse, 0, len(departments))

	for _, dept := range departments {
		if q == "" ||
			contains(dept.DepartmentName, q) ||
			contains(dept.ShortName, q) ||
			strings.Contains(strconv.FormatInt(dept.DepartmentID, 10), q) {
			result = append(result, dept)
		}
	}
	return result
}

// Summary формирует строку вида `Showing 2 of 5 employees matching "an" in Sales`.
// scope - название подразделения или пустая строка.
func Summary(shown, total int, noun, query, scope string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d %s", shown, total, noun)
	if query != "" {
		fmt.Fprintf(&b, " matching %q", query)
	}
	if scope != "" {
		b.WriteString(" in " + scope)
	}
	return b.String()
}

// DepartmentScope возвращает подпись фильтра по подразделению для Summary:
// "no department", название подразделения или пустую строку.
func DepartmentScope(department string, departments []dto.DepartmentResponse) string {
	switch department {
	case "", DepartmentAll:
		return ""
	case DepartmentNone:
		return "no department"
	}
	for _, d := range departments {
		if strconv.FormatInt(d.DepartmentID, 10) == department {
			return d.DepartmentName
		}
	}
	return ""
}

// contains проверяет вхождение уже приведённого к нижнему регистру q
func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
