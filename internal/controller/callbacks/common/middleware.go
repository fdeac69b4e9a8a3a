package common

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

func errStudentNotFound(id string) error {
	return fmt.Errorf("%w: %s", service.ErrStudentNotFound, id)
}

func errLessonNotFound(id string) error {
	return fmt.Errorf("%w: %s", service.ErrLessonNotFound, id)
}

// WithContext создаёт HandlerContext и передаёт его обработчику
func WithContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	handler(NewHandlerContext(ctx, b, callback, h))
}

// WithLesson разбирает ID занятия из callback data и загружает занятие.
// При ошибке сам отвечает пользователю.
func WithLesson(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	prefix string,
	handler func(*HandlerContext, *model.Lesson),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	lessonID, err := ParseArg(callback.Data, prefix)
	if err != nil {
		HandleError(hc, err, "parse lesson id")
		return
	}

	lesson, err := hc.RequireLesson(lessonID)
	if err != nil {
		HandleError(hc, err, "load lesson")
		return
	}

	handler(hc, lesson)
}

// WithStudent разбирает ID ученика из callback data и загружает ученика
func WithStudent(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	prefix string,
	handler func(*HandlerContext, *model.Student),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	studentID, err := ParseArg(callback.Data, prefix)
	if err != nil {
		HandleError(hc, err, "parse student id")
		return
	}

	student, err := hc.RequireStudent(studentID)
	if err != nil {
		HandleError(hc, err, "load student")
		return
	}

	handler(hc, student)
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

// LogAndAnswer логирует действие и отвечает на callback
func LogAndAnswer(hc *HandlerContext, message string, answer string) {
	hc.Handler.Logger.Info(message, zap.Int64("telegram_id", hc.TelegramID))
	hc.Answer(answer)
}

// RequireState проверяет, что пользователь всё ещё в нужном шаге диалога.
// Кнопки из старых сообщений после отмены диалога отвечают alert'ом.
func RequireState(hc *HandlerContext, expected state.UserState) bool {
	if hc.State() != callbacktypes.UserState(expected) {
		HandleError(hc, ErrSessionLost, "check dialog state")
		return false
	}
	return true
}
