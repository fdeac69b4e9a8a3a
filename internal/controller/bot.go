package controller

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/handlers"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

// NewBotController создаёт бота и все обработчики.
// ownerID != 0 ограничивает бота одним пользователем Telegram.
func NewBotController(
	token string,
	services callbacks.Services,
	ownerID int64,
	logger *zap.Logger,
) (*BotController, error) {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(services, state.NewAdapter(stateManager), logger)

	// Создаём обработчики команд; зависимости общие с callbacks
	cmdHandlers := handlers.NewHandlers(callbackHandler.Handler, stateManager, ownerID, logger)

	botInstance, err := bot.New(token,
		bot.WithMiddlewares(cmdHandlers.Gate),
		bot.WithDefaultHandler(cmdHandlers.HandleUnknown),
		bot.WithErrorsHandler(func(err error) {
			logger.Error("Telegram API error", zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}, nil
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	commands := map[string]bot.HandlerFunc{
		"/start":        c.handlers.HandleStart,
		"/help":         c.handlers.HandleHelp,
		"/cancel":       c.handlers.HandleCancel,
		"/panel":        c.handlers.HandlePanel,
		"/ogrenciler":   c.handlers.HandleStudents,
		"/dersler":      c.handlers.HandleLessons,
		"/asistan":      c.handlers.HandlePlanner,
		"/sinav":        c.handlers.HandleQuiz,
		"/yapilacaklar": c.handlers.HandleTodos,
		"/yedek":        c.handlers.HandleBackup,
		"/logout":       c.handlers.HandleLogout,
	}
	for pattern, handler := range commands {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, pattern, bot.MatchTypeExact, handler)
	}

	// Текст внутри диалогов и файлы резервных копий; условия не пересекаются
	c.bot.RegisterHandlerMatchFunc(handlers.IsDialogText, c.handlers.HandleTextMessage)
	c.bot.RegisterHandlerMatchFunc(handlers.IsDocument, c.handlers.HandleDocument)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Ana menü"},
		{Command: "panel", Description: "📊 Genel bakış"},
		{Command: "ogrenciler", Description: "👥 Öğrenciler"},
		{Command: "dersler", Description: "📅 Dersler"},
		{Command: "asistan", Description: "🧠 YZ ders planlayıcı"},
		{Command: "sinav", Description: "📝 Sınav hazırlayıcı"},
		{Command: "yapilacaklar", Description: "✅ Yapılacaklar"},
		{Command: "yedek", Description: "💾 Yedekleme"},
		{Command: "cancel", Description: "✖️ İşlemi iptal et"},
		{Command: "help", Description: "❓ Yardım"},
		{Command: "logout", Description: "🔒 Çıkış"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
