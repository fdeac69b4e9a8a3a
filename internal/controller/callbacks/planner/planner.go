package planner

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlePlanner список запланированных занятий
func HandlePlanner(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		showList(hc, 0)
	})
}

// HandlePlannerPage переключение страниц
func HandlePlannerPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParseIntArg(callback.Data, callbacktypes.PlannerPage)
		if err != nil {
			common.HandleError(hc, err, "parse planner page")
			return
		}
		showList(hc, page)
	})
}

// HandleGenerate генерирует план занятия. План хранится в данных диалога
// до нажатия "Derse Kaydet".
func HandleGenerate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithLesson(ctx, b, callback, h, callbacktypes.PlannerGenerate, func(hc *common.HandlerContext, lesson *model.Lesson) {
		student, err := hc.RequireStudent(lesson.StudentID)
		if err != nil {
			common.HandleError(hc, err, "load lesson student")
			return
		}

		// Запрос к модели занимает секунды, callback отвечаем сразу
		hc.Answer("")
		if err := hc.EditMessage(common.GeneratingText, nil); err != nil {
			h.Logger.Warn("Failed to show progress", zap.Error(err))
		}

		plan, err := h.Generator.GenerateLessonPlan(ctx, lesson.Topic, student.Level, lesson.DurationMinutes)
		if err != nil {
			h.Logger.Error("Lesson plan generation failed",
				zap.String("lesson_id", lesson.ID),
				zap.Error(err))

			kb := keyboard.NewBuilder().
				Row(keyboard.Button("🔄 Tekrar Dene", callbacktypes.PlannerGenerate+lesson.ID)).
				AddBackButton(callbacktypes.PlannerPage + "0").
				Build()
			text := "❌ Hata: " + common.ErrorMessage(err) + "\n\nDers planı oluşturulamadı."
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to show generation error", zap.Error(err))
			}
			return
		}

		hc.SetData(callbacktypes.DataPlanPrefix+lesson.ID, plan)

		text, kb := common.BuildPlanScreen(plan, lesson, student.Name, false)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show lesson plan", zap.String("lesson_id", lesson.ID), zap.Error(err))
		}
	})
}

// HandleSave прикрепляет сгенерированный план к занятию
func HandleSave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithLesson(ctx, b, callback, h, callbacktypes.PlannerSave, func(hc *common.HandlerContext, lesson *model.Lesson) {
		key := callbacktypes.DataPlanPrefix + lesson.ID

		raw, ok := hc.GetData(key)
		plan, isPlan := raw.(*model.AILessonPlan)
		if !ok || !isPlan || plan == nil {
			common.HandleError(hc, common.ErrSessionLost, "load generated plan")
			return
		}

		updated, err := h.Tutor.AttachPlan(ctx, lesson.ID, *plan)
		if err != nil {
			common.HandleError(hc, err, "attach plan")
			return
		}
		h.StateManager.DeleteData(hc.TelegramID, key)

		text, kb := common.BuildPlanScreen(updated.AIGeneratedPlan, updated, h.Tutor.StudentName(updated.StudentID), true)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "show saved plan")
			return
		}
		hc.AnswerAlert("✅ Ders planı başarıyla kaydedildi!")
	})
}

func showList(hc *common.HandlerContext, page int) {
	tutor := hc.Handler.Tutor
	text, kb := common.BuildPlannerScreen(tutor.Snapshot(), tutor.EligibleForPlanning(), page)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show planner")
		return
	}
	hc.Answer("")
}
