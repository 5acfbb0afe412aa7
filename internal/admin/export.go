package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/filter"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportEmployees выгружает текущую выборку сотрудников в Excel
func (h *Handler) exportEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	department := r.URL.Query().Get("department")

	employees, err := h.api.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch employees for export", slog.Any("error", err))
		h.redirect(w, r, "/employees", *h.fetchError(err, "employees"))
		return
	}

	f, err := buildEmployeesWorkbook(filter.Employees(employees, query, department))
	if err != nil {
		h.logger.Error("failed to build workbook", slog.Any("error", err))
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	if err := f.Write(w); err != nil {
		h.logger.Error("failed to write workbook", slog.Any("error", err))
	}
}

func buildEmployeesWorkbook(employees []dto.EmployeeResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []any{"ID", "First Name", "Last Name", "Department", "Short Name"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", style); err != nil {
		return nil, err
	}

	for i, emp := range employees {
		row := []any{emp.EmployeeID, emp.FirstName, emp.LastName, "", ""}
		if emp.Department != nil {
			row[3] = emp.Department.DepartmentName
			row[4] = emp.Department.ShortName
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
