package students

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleStudents первая страница списка учеников
func HandleStudents(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		showList(hc, 0)
	})
}

// HandleStudentsPage переключение страниц
func HandleStudentsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParseIntArg(callback.Data, callbacktypes.StudentsPage)
		if err != nil {
			common.HandleError(hc, err, "parse students page")
			return
		}
		hc.ClearState()
		showList(hc, page)
	})
}

// HandleStudentView карточка ученика
func HandleStudentView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithStudent(ctx, b, callback, h, callbacktypes.StudentView, func(hc *common.HandlerContext, student *model.Student) {
		hc.ClearState()
		showStudent(hc, student, "")
	})
}

// HandleStudentDelete спрашивает подтверждение удаления
func HandleStudentDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithStudent(ctx, b, callback, h, callbacktypes.StudentDelete, func(hc *common.HandlerContext, student *model.Student) {
		lessons := common.LessonsOfStudent(h.Tutor.Snapshot().Lessons, student.ID)
		text, kb := common.BuildDeleteStudentScreen(student, len(lessons))
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "confirm student delete")
			return
		}
		hc.Answer("")
	})
}

// HandleStudentDeleteConfirm удаляет ученика вместе со всеми его занятиями
func HandleStudentDeleteConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		studentID, err := common.ParseArg(callback.Data, callbacktypes.StudentDeleteConfirm)
		if err != nil {
			common.HandleError(hc, err, "parse student id")
			return
		}

		if err := h.Tutor.DeleteStudent(ctx, studentID); err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}

		text, kb := common.BuildStudentsScreen(h.Tutor.Snapshot(), 0)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "show students")
			return
		}
		hc.Answer("🗑 Öğrenci silindi")
	})
}

func showList(hc *common.HandlerContext, page int) {
	text, kb := common.BuildStudentsScreen(hc.Handler.Tutor.Snapshot(), page)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show students")
		return
	}
	hc.Answer("")
}

func showStudent(hc *common.HandlerContext, student *model.Student, answer string) {
	lessons := common.LessonsOfStudent(hc.Handler.Tutor.Snapshot().Lessons, student.ID)
	text, kb := common.BuildStudentScreen(student, lessons)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show student")
		return
	}
	hc.Answer(answer)
}
