package cmd

import (
	"fmt"

	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/filter"
	"github.com/spf13/cobra"
)

func newDepartmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Управление подразделениями",
	}

	cmd.AddCommand(
		newDepartmentsListCmd(a),
		newDepartmentCreateCmd(a),
		newDepartmentUpdateCmd(a),
		newDepartmentDeleteCmd(a),
	)
	return cmd
}

func newDepartmentsListCmd(a *app) *cobra.Command {
	var search, format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список подразделений",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			all, err := a.api.ListDepartments(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch departments: %w", err)
			}
			departments := filter.Departments(all, search)

			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), departments)
			}

			if len(departments) == 0 {
				mutedColor.Fprintln(cmd.OutOrStdout(), "No departments found")
				return nil
			}
			if err := printDepartments(cmd.OutOrStdout(), departments); err != nil {
				return err
			}
			if search != "" {
				mutedColor.Fprintln(cmd.OutOrStdout(), filter.Summary(len(departments), len(all), "departments", search, ""))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "строка поиска")
	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "формат вывода: table или json")
	return cmd
}

func newDepartmentCreateCmd(a *app) *cobra.Command {
	var name, short string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать подразделение",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.DepartmentRequest{DepartmentName: name, ShortName: short}
			req.Normalize()

			if err := a.api.CreateDepartment(cmd.Context(), req); err != nil {
				return fmt.Errorf("failed to create department: %w", err)
			}
			done(cmd, "Department created: %s (%s)", req.DepartmentName, req.ShortName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "название")
	cmd.Flags().StringVar(&short, "short", "", "короткое имя, до 10 символов")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("short")
	return cmd
}

func newDepartmentUpdateCmd(a *app) *cobra.Command {
	var name, short string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Изменить подразделение",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.api.GetDepartment(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch department %d: %w", id, err)
			}

			req := dto.DepartmentRequest{DepartmentName: current.DepartmentName, ShortName: current.ShortName}
			if cmd.Flags().Changed("name") {
				req.DepartmentName = name
			}
			if cmd.Flags().Changed("short") {
				req.ShortName = short
			}
			req.Normalize()

			if err := a.api.UpdateDepartment(cmd.Context(), id, req); err != nil {
				return fmt.Errorf("failed to update department %d: %w", id, err)
			}
			done(cmd, "Department %d updated", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "название")
	cmd.Flags().StringVar(&short, "short", "", "короткое имя, до 10 символов")
	return cmd
}

func newDepartmentDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Удалить подразделение, сотрудники останутся без подразделения",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.api.DeleteDepartment(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete department %d: %w", id, err)
			}
			done(cmd, "Department %d deleted", id)
			return nil
		},
	}
}
