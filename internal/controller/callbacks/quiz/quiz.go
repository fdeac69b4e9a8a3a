package quiz

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Генератор тестов: тема -> уровень -> количество вопросов
// ========================

// HandleQuiz начинает диалог (и "Yeni Sınav")
func HandleQuiz(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.SetState(callbacktypes.UserState(state.StateQuizTopic))

		text, kb := common.QuizTopicPrompt()
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt quiz topic")
			return
		}
		hc.Answer("")
	})
}

// HandleLevel уровень выбран
func HandleLevel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		topic := hc.GetString(callbacktypes.DataQuizTopic)
		if topic == "" {
			common.HandleError(hc, common.ErrSessionLost, "load quiz topic")
			return
		}

		idx, err := common.ParseIntArg(callback.Data, callbacktypes.QuizLevel)
		if err != nil {
			common.HandleError(hc, err, "parse quiz level")
			return
		}
		level, ok := common.LevelByIndex(idx)
		if !ok {
			common.HandleError(hc, fmt.Errorf("%w: level %d", common.ErrInvalidFormat, idx), "parse quiz level")
			return
		}
		hc.SetData(callbacktypes.DataQuizLevel, string(level))

		text, kb := common.QuizCountPrompt(topic, level)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt quiz count")
			return
		}
		hc.Answer("")
	})
}

// HandleCount количество выбрано, генерируем тест
func HandleCount(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		topic := hc.GetString(callbacktypes.DataQuizTopic)
		level := model.StudentLevel(hc.GetString(callbacktypes.DataQuizLevel))
		if topic == "" || level == "" {
			common.HandleError(hc, common.ErrSessionLost, "load quiz settings")
			return
		}

		count, err := common.ParseIntArg(callback.Data, callbacktypes.QuizCount)
		if err != nil {
			common.HandleError(hc, err, "parse quiz count")
			return
		}

		hc.Answer("")
		if err := hc.EditMessage(common.GeneratingText, nil); err != nil {
			h.Logger.Warn("Failed to show progress", zap.Error(err))
		}

		token := beginRequest(h.StateManager, hc.TelegramID, topic, level, count)
		quiz, err := h.Generator.GenerateQuiz(ctx, topic, level, count)

		// Пока шла генерация, диалог могли отменить или запросить другой тест
		if !isCurrentRequest(h.StateManager, hc.TelegramID, token) {
			h.Logger.Info("Quiz result dropped, request is outdated", zap.Int64("telegram_id", hc.TelegramID))
			return
		}

		if err != nil {
			h.Logger.Error("Quiz generation failed", zap.String("topic", topic), zap.Error(err))
			kb := keyboard.NewBuilder().
				Row(keyboard.Button("🔄 Tekrar Dene", callbacktypes.QuizAgain)).
				AddMainMenuButton().
				Build()
			if err := hc.EditMessage("❌ Sınav oluşturulamadı.\n\n"+common.ErrorMessage(err), kb); err != nil {
				h.Logger.Error("Failed to show generation error", zap.Error(err))
			}
			return
		}

		hc.SetData(callbacktypes.DataQuiz, quiz)

		text, kb := common.BuildQuizScreen(quiz)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show quiz", zap.Error(err))
		}
	})
}

// HandleCopy отправляет тест простым текстом для копирования
func HandleCopy(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		raw, _ := hc.GetData(callbacktypes.DataQuiz)
		quiz, ok := raw.(*model.GeneratedQuiz)
		if !ok || quiz == nil {
			common.HandleError(hc, common.ErrSessionLost, "load quiz")
			return
		}

		if err := hc.SendMessage(common.QuizCopyText(quiz), nil); err != nil {
			common.HandleError(hc, err, "send quiz text")
			return
		}
		hc.Answer("📋 Kopyalandı")
	})
}

// beginRequest запоминает запрос генерации; каждый вызов даёт новый токен
func beginRequest(sm callbacktypes.StateManager, telegramID int64, topic string, level model.StudentLevel, count int) string {
	token := fmt.Sprintf("%s|%s|%d|%s", topic, level, count, service.GenerateID())
	sm.SetData(telegramID, callbacktypes.DataQuizRequest, token)
	return token
}

// isCurrentRequest true, если после token не было отмены и нового запроса
func isCurrentRequest(sm callbacktypes.StateManager, telegramID int64, token string) bool {
	return sm.GetString(telegramID, callbacktypes.DataQuizRequest) == token
}
