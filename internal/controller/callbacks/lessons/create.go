package lessons

import (
	"context"
	"strconv"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Диалог планирования занятия:
// ученик -> тема -> дата -> время -> длительность -> цена
// ========================

// HandleLessonAdd начинает диалог с выбора ученика
func HandleLessonAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.SetState(callbacktypes.UserState(state.StateAddLessonStudent))

		text, kb := common.LessonStudentPrompt(h.Tutor.Snapshot().Students)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt lesson student")
			return
		}
		hc.Answer("")
	})
}

// HandleLessonPickStudent ученик выбран в диалоге
func HandleLessonPickStudent(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithStudent(ctx, b, callback, h, callbacktypes.LessonPickStudent, func(hc *common.HandlerContext, student *model.Student) {
		if !common.RequireState(hc, state.StateAddLessonStudent) {
			return
		}
		promptTopic(hc, student)
	})
}

// HandleStudentNewLesson начинает диалог из карточки ученика, ученик уже выбран
func HandleStudentNewLesson(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithStudent(ctx, b, callback, h, callbacktypes.StudentNewLesson, func(hc *common.HandlerContext, student *model.Student) {
		hc.ClearState()
		promptTopic(hc, student)
	})
}

// HandleLessonDateToday дата занятия = сегодня
func HandleLessonDateToday(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if !common.RequireState(hc, state.StateAddLessonDate) {
			return
		}

		hc.SetData(callbacktypes.DataLessonDate, h.Now().Format(model.DateLayout))
		hc.SetState(callbacktypes.UserState(state.StateAddLessonTime))

		text, kb := common.LessonTimePrompt()
		editPrompt(hc, text, kb)
	})
}

// HandleLessonTimeDefault время по умолчанию
func HandleLessonTimeDefault(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if !common.RequireState(hc, state.StateAddLessonTime) {
			return
		}

		hc.SetData(callbacktypes.DataLessonTime, common.DefaultLessonTime)
		hc.SetState(callbacktypes.UserState(state.StateAddLessonDuration))

		text, kb := common.LessonDurationPrompt()
		editPrompt(hc, text, kb)
	})
}

// HandleLessonDuration длительность выбрана кнопкой
func HandleLessonDuration(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if !common.RequireState(hc, state.StateAddLessonDuration) {
			return
		}

		minutes, err := common.ParseIntArg(callback.Data, callbacktypes.LessonDuration)
		if err != nil || minutes <= 0 {
			common.HandleError(hc, common.ErrInvalidFormat, "parse lesson duration")
			return
		}

		hc.SetData(callbacktypes.DataLessonDuration, strconv.Itoa(minutes))
		hc.SetState(callbacktypes.UserState(state.StateAddLessonPrice))

		text, kb := common.LessonPricePrompt()
		editPrompt(hc, text, kb)
	})
}

// HandleLessonPriceDefault цена по умолчанию, занятие создаётся
func HandleLessonPriceDefault(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if !common.RequireState(hc, state.StateAddLessonPrice) {
			return
		}

		lesson, err := FinishDialog(ctx, h, hc.TelegramID, common.DefaultLessonPrice)
		if err != nil {
			common.HandleError(hc, err, "create lesson")
			return
		}
		ShowLesson(hc, lesson, "✅ Ders planlandı")
	})
}

// FinishDialog создаёт занятие из данных диалога и очищает состояние
func FinishDialog(ctx context.Context, h *callbacktypes.Handler, telegramID int64, price float64) (*model.Lesson, error) {
	sm := h.StateManager

	studentID := sm.GetString(telegramID, callbacktypes.DataLessonStudent)
	if studentID == "" {
		sm.ClearState(telegramID)
		return nil, common.ErrSessionLost
	}

	duration, err := strconv.Atoi(sm.GetString(telegramID, callbacktypes.DataLessonDuration))
	if err != nil {
		duration = common.DefaultLessonDuration
	}

	lesson, err := h.Tutor.AddLesson(ctx, service.LessonInput{
		StudentID:       studentID,
		Date:            sm.GetString(telegramID, callbacktypes.DataLessonDate),
		Time:            sm.GetString(telegramID, callbacktypes.DataLessonTime),
		DurationMinutes: duration,
		Topic:           sm.GetString(telegramID, callbacktypes.DataLessonTopic),
		Price:           price,
	})
	if err != nil {
		h.Logger.Warn("Lesson dialog failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
		sm.ClearState(telegramID)
		return nil, err
	}

	sm.ClearState(telegramID)
	return lesson, nil
}

func promptTopic(hc *common.HandlerContext, student *model.Student) {
	hc.SetData(callbacktypes.DataLessonStudent, student.ID)
	hc.SetState(callbacktypes.UserState(state.StateAddLessonTopic))

	text, kb := common.LessonTopicPrompt(student.Name)
	editPrompt(hc, text, kb)
}

func editPrompt(hc *common.HandlerContext, text string, kb *models.InlineKeyboardMarkup) {
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "prompt lesson field")
		return
	}
	hc.Answer("")
}
