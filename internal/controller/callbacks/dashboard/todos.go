package dashboard

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleTodos показывает список заметок
func HandleTodos(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		showTodos(hc, "")
	})
}

// HandleTodoAdd ждёт текст новой заметки
func HandleTodoAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.SetState(callbacktypes.UserState(state.StateAddTodo))

		kb := keyboard.NewBuilder().AddCancelButton().Build()
		if err := hc.EditMessage("📝 <b>Yeni not ekle...</b>\n\nNot metnini gönderin:", kb); err != nil {
			common.HandleError(hc, err, "prompt todo")
			return
		}
		hc.Answer("")
	})
}

// HandleTodoToggle отмечает заметку выполненной или снимает отметку
func HandleTodoToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		todoID, err := common.ParseArg(callback.Data, callbacktypes.TodoToggle)
		if err != nil {
			common.HandleError(hc, err, "parse todo id")
			return
		}

		if err := h.Tutor.ToggleTodo(ctx, todoID); err != nil {
			common.HandleError(hc, err, "toggle todo")
			return
		}
		showTodos(hc, "")
	})
}

// HandleTodoDelete удаляет заметку
func HandleTodoDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		todoID, err := common.ParseArg(callback.Data, callbacktypes.TodoDelete)
		if err != nil {
			common.HandleError(hc, err, "parse todo id")
			return
		}

		if err := h.Tutor.DeleteTodo(ctx, todoID); err != nil {
			common.HandleError(hc, err, "delete todo")
			return
		}
		showTodos(hc, "🗑 Silindi")
	})
}

func showTodos(hc *common.HandlerContext, answer string) {
	text, kb := common.BuildTodosScreen(hc.Handler.Tutor.Snapshot().Todos)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show todos")
		return
	}
	hc.Answer(answer)
}
