package common

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// BuildPlannerScreen список запланированных занятий для генерации плана
func BuildPlannerScreen(data model.AppData, eligible []model.Lesson, page int) (string, *models.InlineKeyboardMarkup) {
	names := studentNames(data)
	p := keyboard.Paginate(len(eligible), page, LessonsPerPage)

	var sb strings.Builder
	sb.WriteString("🧠 <b>YZ Ders Planlayıcı</b>\n\n")
	if len(eligible) == 0 {
		sb.WriteString("<i>Planlanmış ders yok.</i>")
	} else {
		sb.WriteString("Yaklaşan Dersi Seç:")
	}

	kb := keyboard.NewBuilder()
	for _, l := range eligible[p.Start:p.End] {
		mark := ""
		if l.AIGeneratedPlan != nil {
			mark = "📘 "
		}
		label := fmt.Sprintf("%s%s %s · %s · %s", mark,
			formatting.FormatShortDate(l.Date), l.Time,
			formatting.Truncate(nameOf(names, l.StudentID), 16),
			formatting.Truncate(l.Topic, 20))
		kb.Row(keyboard.Button(label, callbacktypes.PlannerGenerate+l.ID))
	}

	kb.AddPagination(callbacktypes.PlannerPage, p).AddMainMenuButton()

	return sb.String(), kb.Build()
}

// BuildPlanScreen план занятия. saved=false: план ещё не прикреплён к занятию
func BuildPlanScreen(plan *model.AILessonPlan, lesson *model.Lesson, studentName string, saved bool) (string, *models.InlineKeyboardMarkup) {
	header := fmt.Sprintf("📘 <b>Ders Planı</b>\n%s · %s · %s\n\n",
		formatting.Escape(lesson.Topic),
		formatting.Escape(studentName),
		formatting.FormatDuration(lesson.DurationMinutes))

	sections := append([]string{header}, planSections(plan)...)

	kb := keyboard.NewBuilder()
	if !saved {
		kb.Row(keyboard.Button("💾 Derse Kaydet", callbacktypes.PlannerSave+lesson.ID))
	}
	kb.Row(keyboard.Button("🔄 Yeniden Oluştur", callbacktypes.PlannerGenerate+lesson.ID)).
		Row(keyboard.Button("📅 Derse Git", callbacktypes.LessonView+lesson.ID)).
		AddBackButton(callbacktypes.PlannerPage + "0")

	return fitSections(sections), kb.Build()
}

func planSections(plan *model.AILessonPlan) []string {
	sections := []string{
		fmt.Sprintf("🎯 <b>Hedef</b>\n%s\n\n", formatting.Escape(plan.Objective)),
	}

	if len(plan.KeyConcepts) > 0 {
		var sb strings.Builder
		sb.WriteString("🔑 <b>Ana Kavramlar</b>\n")
		for _, c := range plan.KeyConcepts {
			sb.WriteString("• " + formatting.Escape(c) + "\n")
		}
		sb.WriteString("\n")
		sections = append(sections, sb.String())
	}

	if len(plan.PracticeProblems) > 0 {
		sections = append(sections, "✏️ <b>Örnek Sorular</b>\n")
		for i, p := range plan.PracticeProblems {
			sections = append(sections, fmt.Sprintf("<b>%d. S:</b> %s\n<b>Çözüm:</b> %s\n\n",
				i+1, formatting.Escape(p.Problem), formatting.Escape(p.Solution)))
		}
	}

	if len(plan.HomeworkIdeas) > 0 {
		var sb strings.Builder
		sb.WriteString("🏠 <b>Ödev Fikirleri</b>\n")
		for _, h := range plan.HomeworkIdeas {
			sb.WriteString("• " + formatting.Escape(h) + "\n")
		}
		sections = append(sections, sb.String())
	}

	return sections
}
