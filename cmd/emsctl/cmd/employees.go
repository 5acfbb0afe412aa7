package cmd

import (
	"fmt"
	"strconv"

	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/filter"
	"github.com/spf13/cobra"
)

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Управление сотрудниками",
	}

	cmd.AddCommand(
		newEmployeesListCmd(a),
		newEmployeeCreateCmd(a),
		newEmployeeUpdateCmd(a),
		newEmployeeDeleteCmd(a),
	)
	return cmd
}

func newEmployeesListCmd(a *app) *cobra.Command {
	var search, department, format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список сотрудников",
		Long: `Список сотрудников с поиском по имени, фамилии и подразделению.

--department принимает all, none (без подразделения) или ID подразделения.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			all, err := a.api.ListEmployees(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch employees: %w", err)
			}
			employees := filter.Employees(all, search, department)

			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), employees)
			}

			if len(employees) == 0 {
				if len(all) == 0 {
					mutedColor.Fprintln(cmd.OutOrStdout(), "No employees found")
				} else {
					mutedColor.Fprintln(cmd.OutOrStdout(), "No employees match your search criteria")
				}
				return nil
			}
			if err := printEmployees(cmd.OutOrStdout(), employees); err != nil {
				return err
			}
			if search != "" || department != filter.DepartmentAll {
				scope, err := a.departmentScope(cmd, department)
				if err != nil {
					return err
				}
				mutedColor.Fprintln(cmd.OutOrStdout(), filter.Summary(len(employees), len(all), "employees", search, scope))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "строка поиска")
	cmd.Flags().StringVarP(&department, "department", "d", filter.DepartmentAll, "фильтр по подразделению: all, none или ID")
	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "формат вывода: table или json")
	return cmd
}

func newEmployeeCreateCmd(a *app) *cobra.Command {
	var first, last, department string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Добавить сотрудника",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deptID, err := parseDepartment(department)
			if err != nil {
				return err
			}

			req := dto.EmployeeRequest{FirstName: first, LastName: last, DepartmentID: deptID}
			req.Normalize()

			if err := a.api.CreateEmployee(cmd.Context(), req); err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}
			done(cmd, "Employee created: %s %s", req.FirstName, req.LastName)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "имя")
	cmd.Flags().StringVar(&last, "last", "", "фамилия")
	cmd.Flags().StringVar(&department, "department", "", "ID подразделения или none")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

// newEmployeeUpdateCmd меняет только переданные флагами поля,
// остальные берутся из текущей записи
func newEmployeeUpdateCmd(a *app) *cobra.Command {
	var first, last, department string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Изменить сотрудника",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.api.GetEmployee(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch employee %d: %w", id, err)
			}

			req := dto.EmployeeRequest{FirstName: current.FirstName, LastName: current.LastName}
			if current.Department != nil {
				deptID := current.Department.DepartmentID
				req.DepartmentID = &deptID
			}

			flags := cmd.Flags()
			if flags.Changed("first") {
				req.FirstName = first
			}
			if flags.Changed("last") {
				req.LastName = last
			}
			if flags.Changed("department") {
				if req.DepartmentID, err = parseDepartment(department); err != nil {
					return err
				}
			}
			req.Normalize()

			if err := a.api.UpdateEmployee(cmd.Context(), id, req); err != nil {
				return fmt.Errorf("failed to update employee %d: %w", id, err)
			}
			done(cmd, "Employee %d updated", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "имя")
	cmd.Flags().StringVar(&last, "last", "", "фамилия")
	cmd.Flags().StringVar(&department, "department", "", "ID подразделения или none")
	return cmd
}

func newEmployeeDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Удалить сотрудника",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.api.DeleteEmployee(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete employee %d: %w", id, err)
			}
			done(cmd, "Employee %d deleted", id)
			return nil
		},
	}
}

// departmentScope подписывает фильтр по подразделению; для ID запрашивает список подразделений
func (a *app) departmentScope(cmd *cobra.Command, department string) (string, error) {
	if department == filter.DepartmentAll || department == filter.DepartmentNone {
		return filter.DepartmentScope(department, nil), nil
	}
	departments, err := a.api.ListDepartments(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to fetch departments: %w", err)
	}
	return filter.DepartmentScope(department, departments), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDepartment: пустая строка и none означают "без подразделения"
func parseDepartment(s string) (*int64, error) {
	if s == "" || s == filter.DepartmentNone {
		return nil, nil
	}
	id, err := parseID(s)
	if err != nil {
		return nil, fmt.Errorf("invalid department: %w", err)
	}
	return &id, nil
}
