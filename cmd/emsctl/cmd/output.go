package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/employee-management/internal/dto"
)

// Форматы вывода списков
const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown format %q: use %s or %s", format, formatTable, formatJSON)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printEmployees(w io.Writer, employees []dto.EmployeeResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDEPARTMENT\tSHORT")
	for _, emp := range employees {
		name, short := "-", "-"
		if emp.Department != nil {
			name, short = emp.Department.DepartmentName, emp.Department.ShortName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", emp.EmployeeID, emp.FullName(), name, short)
	}
	return tw.Flush()
}

func printDepartments(w io.Writer, departments []dto.DepartmentResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSHORT\tNAME")
	for _, dept := range departments {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", dept.DepartmentID, dept.ShortName, dept.DepartmentName)
	}
	return tw.Flush()
}
