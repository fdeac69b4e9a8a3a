package common

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Общая навигация
// ========================

// HandleBackToMain очищает диалог и показывает главное меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()
		text, kb := BuildMainMenuScreen()
		if err := hc.EditMessage(text, kb); err != nil {
			HandleError(hc, err, "show main menu")
			return
		}
		hc.Answer("")
	})
}

// HandleCancel прерывает текущий диалог
func HandleCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()
		text, kb := BuildMainMenuScreen()
		if err := hc.EditMessage("✖️ İşlem iptal edildi.\n\n"+text, kb); err != nil {
			HandleError(hc, err, "cancel dialog")
			return
		}
		hc.Answer("İptal edildi")
	})
}

// HandleNoop кнопка без действия (номер страницы)
func HandleNoop(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, _ *callbacktypes.Handler) {
	AnswerCallback(ctx, b, callback.ID, "")
}

// HandleLogout завершает сессию
func HandleLogout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()
		h.Auth.Logout(hc.TelegramID)
		h.Logger.Info("User logged out", zap.Int64("telegram_id", hc.TelegramID))

		if err := hc.EditMessage("🔒 Çıkış yapıldı.\n\n"+BuildLoginScreen(true), nil); err != nil {
			HandleError(hc, err, "logout")
			return
		}
		hc.SetState(callbacktypes.UserState(state.StateEnterPassphrase))
		hc.Answer("Çıkış yapıldı")
	})
}
