package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/ai"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Handler with Dependencies
// ========================

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// Services зависимости callback handlers
type Services struct {
	Tutor     *service.TutorService
	Dashboard *service.DashboardService
	Transfer  *service.TransferService
	Auth      *service.AuthService
	Generator ai.Generator
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(services Services, stateManager callbacktypes.StateManager, logger *zap.Logger) *Handler {
	inner := &callbacktypes.Handler{
		Tutor:        services.Tutor,
		Dashboard:    services.Dashboard,
		Transfer:     services.Transfer,
		Auth:         services.Auth,
		Generator:    services.Generator,
		StateManager: stateManager,
		Logger:       logger,
		Now:          time.Now,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Debug("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	// Вызываем роутер
	Route(ctx, b, callback, h.Handler)
}
