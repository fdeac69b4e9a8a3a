package students

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Диалог добавления ученика: имя -> уровень -> e-mail -> телефон
// ========================

// HandleStudentAdd начинает диалог
func HandleStudentAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.SetState(callbacktypes.UserState(state.StateAddStudentName))

		text, kb := common.StudentNamePrompt()
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt student name")
			return
		}
		hc.Answer("")
	})
}

// HandleStudentLevel выбор уровня
func HandleStudentLevel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if !common.RequireState(hc, state.StateAddStudentLevel) {
			return
		}

		idx, err := common.ParseIntArg(callback.Data, callbacktypes.StudentLevel)
		if err != nil {
			common.HandleError(hc, err, "parse student level")
			return
		}
		level, ok := common.LevelByIndex(idx)
		if !ok {
			common.HandleError(hc, fmt.Errorf("%w: level %d", common.ErrInvalidFormat, idx), "parse student level")
			return
		}

		hc.SetData(callbacktypes.DataStudentLevel, string(level))
		hc.SetState(callbacktypes.UserState(state.StateAddStudentEmail))

		text, kb := common.StudentEmailPrompt()
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt student email")
			return
		}
		hc.Answer(string(level))
	})
}

// HandleStudentSkip пропускает e-mail или телефон
func HandleStudentSkip(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		switch hc.State() {
		case callbacktypes.UserState(state.StateAddStudentEmail):
			hc.SetData(callbacktypes.DataStudentEmail, "")
			hc.SetState(callbacktypes.UserState(state.StateAddStudentPhone))

			text, kb := common.StudentPhonePrompt()
			if err := hc.EditMessage(text, kb); err != nil {
				common.HandleError(hc, err, "prompt student phone")
				return
			}
			hc.Answer("")

		case callbacktypes.UserState(state.StateAddStudentPhone):
			student, err := FinishDialog(ctx, h, hc.TelegramID, "")
			if err != nil {
				common.HandleError(hc, err, "create student")
				return
			}
			showStudent(hc, student, "✅ Öğrenci eklendi")

		default:
			common.HandleError(hc, common.ErrSessionLost, "skip student field")
		}
	})
}

// FinishDialog создаёт ученика из данных диалога и очищает состояние.
// При ошибке валидации состояние сохраняется, чтобы можно было ввести телефон заново.
func FinishDialog(ctx context.Context, h *callbacktypes.Handler, telegramID int64, phone string) (*model.Student, error) {
	sm := h.StateManager

	name := sm.GetString(telegramID, callbacktypes.DataStudentName)
	if name == "" {
		sm.ClearState(telegramID)
		return nil, common.ErrSessionLost
	}

	student, err := h.Tutor.AddStudent(ctx, service.StudentInput{
		Name:  name,
		Level: model.StudentLevel(sm.GetString(telegramID, callbacktypes.DataStudentLevel)),
		Email: sm.GetString(telegramID, callbacktypes.DataStudentEmail),
		Phone: phone,
	})
	if err != nil {
		return nil, err
	}

	sm.ClearState(telegramID)
	return student, nil
}
