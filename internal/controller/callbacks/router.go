package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/backup"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/dashboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/lessons"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/planner"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/quiz"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/students"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	switch {
	// ===== Навигация =====
	case data == callbacktypes.Noop:
		common.HandleNoop(ctx, b, callback, h)
	case data == callbacktypes.BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)
	case data == callbacktypes.Cancel:
		common.HandleCancel(ctx, b, callback, h)
	case data == callbacktypes.Logout:
		common.HandleLogout(ctx, b, callback, h)

	// ===== Панель и заметки =====
	case data == callbacktypes.NavDashboard:
		dashboard.HandleDashboard(ctx, b, callback, h)
	case data == callbacktypes.DashboardChart:
		dashboard.HandleChart(ctx, b, callback, h)
	case data == callbacktypes.NavTodos:
		dashboard.HandleTodos(ctx, b, callback, h)
	case data == callbacktypes.TodoAdd:
		dashboard.HandleTodoAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.TodoToggle):
		dashboard.HandleTodoToggle(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.TodoDelete):
		dashboard.HandleTodoDelete(ctx, b, callback, h)

	// ===== Ученики =====
	case data == callbacktypes.NavStudents:
		students.HandleStudents(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentsPage):
		students.HandleStudentsPage(ctx, b, callback, h)
	case data == callbacktypes.StudentAdd:
		students.HandleStudentAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentLevel):
		students.HandleStudentLevel(ctx, b, callback, h)
	case data == callbacktypes.StudentSkip:
		students.HandleStudentSkip(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentDeleteConfirm):
		students.HandleStudentDeleteConfirm(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentDelete):
		students.HandleStudentDelete(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentNewLesson):
		lessons.HandleStudentNewLesson(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.StudentView):
		students.HandleStudentView(ctx, b, callback, h)

	// ===== Занятия =====
	case data == callbacktypes.NavLessons:
		lessons.HandleLessons(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonsPage):
		lessons.HandleLessonsPage(ctx, b, callback, h)
	case data == callbacktypes.LessonAdd:
		lessons.HandleLessonAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonPickStudent):
		lessons.HandleLessonPickStudent(ctx, b, callback, h)
	case data == callbacktypes.LessonDateToday:
		lessons.HandleLessonDateToday(ctx, b, callback, h)
	case data == callbacktypes.LessonTimeDefault:
		lessons.HandleLessonTimeDefault(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonDuration):
		lessons.HandleLessonDuration(ctx, b, callback, h)
	case data == callbacktypes.LessonPriceDefault:
		lessons.HandleLessonPriceDefault(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonStatus):
		lessons.HandleLessonStatus(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonPayment):
		lessons.HandleLessonPayment(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonNotes):
		lessons.HandleLessonNotes(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonPlan):
		lessons.HandleLessonPlan(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.LessonView):
		lessons.HandleLessonView(ctx, b, callback, h)

	// ===== AI-планировщик =====
	case data == callbacktypes.NavPlanner:
		planner.HandlePlanner(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.PlannerPage):
		planner.HandlePlannerPage(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.PlannerGenerate):
		planner.HandleGenerate(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.PlannerSave):
		planner.HandleSave(ctx, b, callback, h)

	// ===== Генератор тестов =====
	case data == callbacktypes.NavQuiz, data == callbacktypes.QuizAgain:
		quiz.HandleQuiz(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.QuizLevel):
		quiz.HandleLevel(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.QuizCount):
		quiz.HandleCount(ctx, b, callback, h)
	case data == callbacktypes.QuizCopy:
		quiz.HandleCopy(ctx, b, callback, h)

	// ===== Резервные копии =====
	case data == callbacktypes.NavBackup:
		backup.HandleBackup(ctx, b, callback, h)
	case data == callbacktypes.BackupExport:
		backup.HandleExport(ctx, b, callback, h)
	case data == callbacktypes.BackupExportXLSX:
		backup.HandleExportXLSX(ctx, b, callback, h)
	case data == callbacktypes.BackupImport:
		backup.HandleImport(ctx, b, callback, h)
	case data == callbacktypes.BackupImportConfirm:
		backup.HandleImportConfirm(ctx, b, callback, h)
	case data == callbacktypes.BackupImportCancel:
		backup.HandleImportCancel(ctx, b, callback, h)

	// ===== Unknown Callback =====
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Bilinmeyen komut")
	}
}
