package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Количество сотрудников и подразделений",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var employees, departments int64

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				n, err := a.api.CountEmployees(ctx)
				employees = n
				return err
			})
			g.Go(func() error {
				n, err := a.api.CountDepartments(ctx)
				departments = n
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch counts: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Employees:   %d\nDepartments: %d\n", employees, departments)
			return nil
		},
	}
}
