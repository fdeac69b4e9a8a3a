package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/mathtutor_bot/internal/app"
	"github.com/Freeeeeet/mathtutor_bot/internal/config"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env открытое хранилище и сервисы для одной команды
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	storage  *app.Storage
	data     *service.DataService
	tutor    *service.TutorService
	transfer *service.TransferService
	auth     *service.AuthService
}

func (e *env) Close() {
	e.storage.Close()
	_ = e.logger.Sync()
}

var verbose bool

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewCLILogger(verbose)

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	data := service.NewDataService(storage.Store, logger)
	return &env{
		cfg:      cfg,
		logger:   logger,
		storage:  storage,
		data:     data,
		tutor:    service.NewTutorService(ctx, data, logger),
		transfer: service.NewTransferService(logger),
		auth:     service.NewAuthService(storage.Store, logger),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tutoradmin",
		Short:         "Обслуживание данных бота репетитора",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "подробные логи")

	root.AddCommand(
		newStatsCmd(),
		newExportCmd(),
		newExportXLSXCmd(),
		newImportCmd(),
		newRestoreAutoCmd(),
		newSetPinCmd(),
		newResetPinCmd(),
		newMigrateCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
