package lessons

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleLessons первая страница журнала
func HandleLessons(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		showList(hc, 0)
	})
}

// HandleLessonsPage переключение страниц журнала
func HandleLessonsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParseIntArg(callback.Data, callbacktypes.LessonsPage)
		if err != nil {
			common.HandleError(hc, err, "parse lessons page")
			return
		}
		hc.ClearState()
		showList(hc, page)
	})
}

// HandleLessonView карточка занятия
func HandleLessonView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithLesson(ctx, b, callback, h, callbacktypes.LessonView, func(hc *common.HandlerContext, lesson *model.Lesson) {
		hc.ClearState()
		ShowLesson(hc, lesson, "")
	})
}

// HandleLessonStatus Planlandı -> Tamamlandı -> İptal -> Planlandı
func HandleLessonStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		lessonID, err := common.ParseArg(callback.Data, callbacktypes.LessonStatus)
		if err != nil {
			common.HandleError(hc, err, "parse lesson id")
			return
		}

		lesson, err := h.Tutor.ToggleStatus(ctx, lessonID)
		if err != nil {
			common.HandleError(hc, err, "toggle lesson status")
			return
		}
		ShowLesson(hc, lesson, string(lesson.Status))
	})
}

// HandleLessonPayment Bekliyor <-> Ödendi
func HandleLessonPayment(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		lessonID, err := common.ParseArg(callback.Data, callbacktypes.LessonPayment)
		if err != nil {
			common.HandleError(hc, err, "parse lesson id")
			return
		}

		lesson, err := h.Tutor.TogglePayment(ctx, lessonID)
		if err != nil {
			common.HandleError(hc, err, "toggle lesson payment")
			return
		}
		ShowLesson(hc, lesson, string(lesson.PaymentStatus))
	})
}

// HandleLessonNotes ждёт текст заметки к занятию
func HandleLessonNotes(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithLesson(ctx, b, callback, h, callbacktypes.LessonNotes, func(hc *common.HandlerContext, lesson *model.Lesson) {
		hc.ClearState()
		hc.SetState(callbacktypes.UserState(state.StateEditLessonNotes))
		hc.SetData(callbacktypes.DataLessonID, lesson.ID)

		text, kb := common.LessonNotesPrompt(lesson)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt lesson notes")
			return
		}
		hc.Answer("")
	})
}

// HandleLessonPlan показывает сохранённый план занятия
func HandleLessonPlan(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithLesson(ctx, b, callback, h, callbacktypes.LessonPlan, func(hc *common.HandlerContext, lesson *model.Lesson) {
		if lesson.AIGeneratedPlan == nil {
			hc.AnswerAlert("Bu ders için kayıtlı plan yok")
			return
		}

		text, kb := common.BuildPlanScreen(lesson.AIGeneratedPlan, lesson, h.Tutor.StudentName(lesson.StudentID), true)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "show lesson plan")
			return
		}
		hc.Answer("")
	})
}

// ShowLesson перерисовывает карточку занятия
func ShowLesson(hc *common.HandlerContext, lesson *model.Lesson, answer string) {
	text, kb := common.BuildLessonScreen(lesson, hc.Handler.Tutor.StudentName(lesson.StudentID))
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show lesson")
		return
	}
	hc.Answer(answer)
}

func showList(hc *common.HandlerContext, page int) {
	tutor := hc.Handler.Tutor
	text, kb := common.BuildLessonsScreen(tutor.Snapshot(), tutor.SortedLessons(), page)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show lessons")
		return
	}
	hc.Answer("")
}
