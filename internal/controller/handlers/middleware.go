package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Gate пропускает только владельца бота и только после ввода пароля.
// Сообщения неавторизованного пользователя обрабатываются как вход.
func (h *Handlers) Gate(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		telegramID, ok := senderID(update)
		if !ok {
			return
		}

		if h.ownerID != 0 && telegramID != h.ownerID {
			h.logger.Warn("Update from foreign user ignored", zap.Int64("telegram_id", telegramID))
			return
		}

		if h.deps.Auth.IsAuthenticated(telegramID) {
			next(ctx, b, update)
			return
		}

		if update.CallbackQuery != nil {
			common.AnswerCallbackAlert(ctx, b, update.CallbackQuery.ID, "🔒 Önce giriş yapın: /start")
			return
		}

		h.handleLogin(ctx, b, update.Message)
	}
}

// handleLogin обрабатывает сообщение неавторизованного пользователя
func (h *Handlers) handleLogin(ctx context.Context, b *bot.Bot, msg *models.Message) {
	telegramID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	switch h.stateManager.GetState(telegramID) {
	case state.StateCreatePassphrase:
		if text != "" && !strings.HasPrefix(text, "/") {
			h.deleteMessage(ctx, b, msg)
			h.handleCreatePassphrase(ctx, b, msg.Chat.ID, telegramID, text)
			return
		}
	case state.StateEnterPassphrase:
		if text != "" && !strings.HasPrefix(text, "/") {
			h.deleteMessage(ctx, b, msg)
			h.handleEnterPassphrase(ctx, b, msg.Chat.ID, telegramID, text)
			return
		}
	}

	h.showLogin(ctx, b, msg.Chat.ID, telegramID)
}

// showLogin предлагает войти или создать пароль
func (h *Handlers) showLogin(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	exists, err := h.deps.Auth.HasPassphrase(ctx)
	if err != nil {
		h.logger.Error("Failed to check passphrase", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Bir hata oluştu, lütfen daha sonra tekrar deneyin.")
		return
	}

	h.stateManager.ClearState(telegramID)
	if exists {
		h.stateManager.SetState(telegramID, state.StateEnterPassphrase)
	} else {
		h.stateManager.SetState(telegramID, state.StateCreatePassphrase)
	}

	h.sendScreen(ctx, b, chatID, common.BuildLoginScreen(exists), nil)
}

func (h *Handlers) handleCreatePassphrase(ctx context.Context, b *bot.Bot, chatID, telegramID int64, pin string) {
	err := h.deps.Auth.CreatePassphrase(ctx, pin)
	switch {
	case errors.Is(err, service.ErrPassphraseTooShort):
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	case errors.Is(err, service.ErrPassphraseExists):
		// пароль создан в другом чате; просим ввести его
		h.showLogin(ctx, b, chatID, telegramID)
		return
	case err != nil:
		h.logger.Error("Failed to create passphrase", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Şifre kaydedilemedi.")
		return
	}

	h.deps.Auth.Authenticate(telegramID)
	h.stateManager.ClearState(telegramID)
	h.logger.Info("Passphrase created", zap.Int64("telegram_id", telegramID))

	text, kb := common.BuildMainMenuScreen()
	h.sendScreen(ctx, b, chatID, "✅ Şifre oluşturuldu.\n\n"+text, kb)
}

func (h *Handlers) handleEnterPassphrase(ctx context.Context, b *bot.Bot, chatID, telegramID int64, pin string) {
	ok, err := h.deps.Auth.Verify(ctx, pin)
	if errors.Is(err, service.ErrNoPassphrase) {
		h.showLogin(ctx, b, chatID, telegramID)
		return
	}
	if err != nil {
		h.logger.Error("Failed to verify passphrase", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Bir hata oluştu, lütfen daha sonra tekrar deneyin.")
		return
	}
	if !ok {
		h.logger.Warn("Wrong passphrase", zap.Int64("telegram_id", telegramID))
		h.sendError(ctx, b, chatID, "❌ Hatalı şifre, tekrar deneyin.")
		return
	}

	h.deps.Auth.Authenticate(telegramID)
	h.stateManager.ClearState(telegramID)
	h.logger.Info("User logged in", zap.Int64("telegram_id", telegramID))

	text, kb := common.BuildMainMenuScreen()
	h.sendScreen(ctx, b, chatID, text, kb)
}
