package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/mathtutor_bot/internal/ai"
	"github.com/Freeeeeet/mathtutor_bot/internal/app"
	"github.com/Freeeeeet/mathtutor_bot/internal/config"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"go.uber.org/zap"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireBot(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := app.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	logger.Sugar().Infow("Starting math tutor bot",
		"environment", cfg.Environment,
		"storage", cfg.StorageBackend,
		"ai_provider", cfg.AIProvider,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	// Сервисы
	dataService := service.NewDataService(storage.Store, logger)
	tutorService := service.NewTutorService(ctx, dataService, logger)
	transferService := service.NewTransferService(logger)
	dashboardService := service.NewDashboardService()
	authService := service.NewAuthService(storage.Store, logger)

	generator, err := ai.NewGenerator(ctx, ai.ProviderConfig{
		Provider: cfg.AIProvider,
		APIKey:   cfg.APIKey,
		Model:    cfg.AIModel,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to configure AI provider", zap.Error(err))
	}

	// Фоновая автокопия
	scheduler := app.NewScheduler(tutorService, transferService, storage.Store, cfg.BackupInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	botController, err := controller.NewBotController(cfg.TelegramToken, callbacks.Services{
		Tutor:     tutorService,
		Dashboard: dashboardService,
		Transfer:  transferService,
		Auth:      authService,
		Generator: generator,
	}, cfg.OwnerTelegramID, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	// Последняя копия перед выходом
	if cfg.BackupInterval > 0 {
		scheduler.Backup(context.Background())
	}
	logger.Info("Bot stopped")
}
