// Package cmd содержит команды консольного клиента emsctl
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app - общее состояние команд, заполняется в PersistentPreRunE
type app struct {
	serverURL string
	timeout   time.Duration
	debug     bool

	api *client.Client
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	mutedColor   = color.New(color.Faint)
)

// Execute запускает корневую команду и завершает процесс при ошибке
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd собирает дерево команд
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "emsctl",
		Short: "emsctl - консольный клиент Employee Management System",
		Long: `emsctl работает с тем же REST API, что и веб-интерфейс:
просмотр и поиск сотрудников и подразделений, создание, изменение и удаление.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cfg := config.Load()
	root.PersistentFlags().StringVar(&a.serverURL, "server", cfg.Admin.APIBaseURL, "адрес REST API")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", cfg.Admin.RequestTimeout, "таймаут запроса")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "писать запросы в stderr")

	root.AddCommand(
		newEmployeesCmd(a),
		newDepartmentsCmd(a),
		newCountCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if a.debug {
		w = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if a.serverURL == "" {
		return fmt.Errorf("server address is empty")
	}
	a.api = client.New(a.serverURL, a.timeout, logger)
	return nil
}

// done печатает сообщение об успешной операции
func done(cmd *cobra.Command, format string, args ...any) {
	successColor.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
