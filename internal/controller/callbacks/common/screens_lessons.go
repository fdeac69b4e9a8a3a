package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

const (
	// LessonsPerPage занятий на странице журнала
	LessonsPerPage = 8

	// Значения по умолчанию для нового занятия
	DefaultLessonTime     = "16:00"
	DefaultLessonDuration = 60
	DefaultLessonPrice    = 500.0
)

// LessonDurations варианты длительности на кнопках, минуты
var LessonDurations = []int{30, 45, 60, 90, 120}

// BuildLessonsScreen журнал занятий, новые сверху
func BuildLessonsScreen(data model.AppData, sorted []model.Lesson, page int) (string, *models.InlineKeyboardMarkup) {
	names := studentNames(data)
	p := keyboard.Paginate(len(sorted), page, LessonsPerPage)

	var sb strings.Builder
	sb.WriteString("📅 <b>Dersler</b>\n\n")
	if len(sorted) == 0 {
		sb.WriteString("<i>Henüz ders yok.</i>")
	} else {
		sb.WriteString("🗓 Planlandı · ✅ Tamamlandı · ❌ İptal\n")
		sb.WriteString("💰 Ödendi · ⏳ Bekliyor")
	}

	kb := keyboard.NewBuilder()
	for _, l := range sorted[p.Start:p.End] {
		label := fmt.Sprintf("%s%s %s %s · %s",
			formatting.GetLessonStatusDisplay(l.Status).Emoji,
			formatting.GetPaymentStatusDisplay(l.PaymentStatus).Emoji,
			formatting.FormatShortDate(l.Date), l.Time,
			formatting.Truncate(nameOf(names, l.StudentID), 20))
		kb.Row(keyboard.Button(label, callbacktypes.LessonView+l.ID))
	}

	kb.AddPagination(callbacktypes.LessonsPage, p).
		Row(keyboard.Button("➕ Yeni Ders Planla", callbacktypes.LessonAdd)).
		AddMainMenuButton()

	return sb.String(), kb.Build()
}

// BuildLessonScreen карточка занятия
func BuildLessonScreen(lesson *model.Lesson, studentName string) (string, *models.InlineKeyboardMarkup) {
	status := formatting.GetLessonStatusDisplay(lesson.Status)
	payment := formatting.GetPaymentStatusDisplay(lesson.PaymentStatus)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📘 <b>%s</b>\n\n", formatting.Escape(lesson.Topic)))
	sb.WriteString(fmt.Sprintf("👤 %s\n", formatting.Escape(studentName)))
	sb.WriteString(fmt.Sprintf("📅 %s\n", formatting.FormatLessonDate(lesson.Date)))
	sb.WriteString(fmt.Sprintf("🕐 %s · %s\n", lesson.Time, formatting.FormatDuration(lesson.DurationMinutes)))
	sb.WriteString(fmt.Sprintf("💵 %s\n\n", formatting.FormatPrice(lesson.Price)))
	sb.WriteString(fmt.Sprintf("Durum: %s\n", status))
	sb.WriteString(fmt.Sprintf("Ödeme: %s\n", payment))
	if lesson.Notes != "" {
		sb.WriteString(fmt.Sprintf("\n🗒 %s\n", formatting.Escape(lesson.Notes)))
	}
	if lesson.AIGeneratedPlan != nil {
		sb.WriteString("\n🧠 Ders planı hazır")
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("🔄 "+status.Text, callbacktypes.LessonStatus+lesson.ID),
			keyboard.Button("💳 "+payment.Text, callbacktypes.LessonPayment+lesson.ID),
		).
		Row(keyboard.Button("🗒 Not Düzenle", callbacktypes.LessonNotes+lesson.ID))

	switch {
	case lesson.AIGeneratedPlan != nil:
		kb.Row(keyboard.Button("📘 Ders Planı", callbacktypes.LessonPlan+lesson.ID))
	case lesson.Status == model.LessonStatusScheduled:
		kb.Row(keyboard.Button("🧠 Plan Oluştur", callbacktypes.PlannerGenerate+lesson.ID))
	}

	kb.AddBackButton(callbacktypes.LessonsPage + "0")

	return sb.String(), kb.Build()
}

// LessonStudentPrompt первый шаг: выбор ученика
func LessonStudentPrompt(students []model.Student) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()
	for _, s := range students {
		kb.Row(keyboard.Button(fmt.Sprintf("%s · %s", s.Name, s.Level), callbacktypes.LessonPickStudent+s.ID))
	}
	kb.AddCancelButton()

	text := "📅 <b>Yeni Ders Planla</b>\n\nÖğrenci seçiniz..."
	if len(students) == 0 {
		text = "📅 <b>Yeni Ders Planla</b>\n\nÖnce bir öğrenci ekleyin."
	}
	return text, kb.Build()
}

// LessonTopicPrompt ввод темы
func LessonTopicPrompt(studentName string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("👤 %s\n\n📘 Konu (örn: Cebire Giriş):", formatting.Escape(studentName))
	return text, keyboard.NewBuilder().AddCancelButton().Build()
}

// LessonDatePrompt ввод даты
func LessonDatePrompt() (string, *models.InlineKeyboardMarkup) {
	text := "📅 Tarih girin (GG.AA.YYYY, YYYY-AA-GG, <i>bugün</i> veya <i>yarın</i>):"
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📅 Bugün", callbacktypes.LessonDateToday)).
		AddCancelButton().
		Build()
	return text, kb
}

// LessonTimePrompt ввод времени
func LessonTimePrompt() (string, *models.InlineKeyboardMarkup) {
	text := "🕐 Saat girin (SS:DD):"
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🕐 "+DefaultLessonTime, callbacktypes.LessonTimeDefault)).
		AddCancelButton().
		Build()
	return text, kb
}

// LessonDurationPrompt выбор длительности
func LessonDurationPrompt() (string, *models.InlineKeyboardMarkup) {
	buttons := make([]models.InlineKeyboardButton, len(LessonDurations))
	for i, d := range LessonDurations {
		buttons[i] = keyboard.Button(formatting.FormatDuration(d), callbacktypes.LessonDuration+strconv.Itoa(d))
	}
	kb := keyboard.NewBuilder().Grid(3, buttons...).AddCancelButton().Build()
	return "⏱ Süre seçin veya dakika olarak yazın:", kb
}

// LessonPricePrompt ввод цены
func LessonPricePrompt() (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("💵 "+formatting.FormatPrice(DefaultLessonPrice), callbacktypes.LessonPriceDefault)).
		AddCancelButton().
		Build()
	return "💵 Ücret girin (₺):", kb
}

// LessonNotesPrompt ввод заметки к занятию
func LessonNotesPrompt(lesson *model.Lesson) (string, *models.InlineKeyboardMarkup) {
	text := "🗒 Ders için not yazın."
	if lesson.Notes != "" {
		text += fmt.Sprintf("\n\nMevcut not:\n<i>%s</i>", formatting.Escape(lesson.Notes))
	}
	return text, keyboard.NewBuilder().AddCancelButton().Build()
}
