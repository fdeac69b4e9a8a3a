package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// StudentsPerPage учеников на странице списка
const StudentsPerPage = 8

// BuildStudentsScreen список учеников
func BuildStudentsScreen(data model.AppData, page int) (string, *models.InlineKeyboardMarkup) {
	p := keyboard.Paginate(len(data.Students), page, StudentsPerPage)

	lessonCount := make(map[string]int)
	for _, l := range data.Lessons {
		lessonCount[l.StudentID]++
	}

	var sb strings.Builder
	sb.WriteString("👥 <b>Öğrenciler</b>\n\n")
	if len(data.Students) == 0 {
		sb.WriteString("<i>Henüz öğrenci eklenmedi.</i>")
	} else {
		sb.WriteString(fmt.Sprintf("Toplam %d öğrenci. Ayrıntılar için seçin:", len(data.Students)))
	}

	kb := keyboard.NewBuilder()
	for _, s := range data.Students[p.Start:p.End] {
		label := fmt.Sprintf("%s · %s · %d ders", formatting.Truncate(s.Name, 24), s.Level, lessonCount[s.ID])
		kb.Row(keyboard.Button(label, callbacktypes.StudentView+s.ID))
	}

	kb.AddPagination(callbacktypes.StudentsPage, p).
		Row(keyboard.Button("➕ Yeni Öğrenci", callbacktypes.StudentAdd)).
		AddMainMenuButton()

	return sb.String(), kb.Build()
}

// BuildStudentScreen карточка ученика с историей занятий
func BuildStudentScreen(student *model.Student, lessons []model.Lesson) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 <b>%s</b>\n\n", formatting.Escape(student.Name)))
	sb.WriteString(fmt.Sprintf("🎓 Seviye: %s\n", student.Level))
	if student.Email != "" {
		sb.WriteString(fmt.Sprintf("📧 E-posta: %s\n", formatting.Escape(student.Email)))
	}
	if student.Phone != "" {
		sb.WriteString(fmt.Sprintf("📞 Telefon: %s\n", formatting.Escape(student.Phone)))
	}
	if student.Notes != "" {
		sb.WriteString(fmt.Sprintf("🗒 %s\n", formatting.Escape(student.Notes)))
	}

	var paid, unpaid float64
	for _, l := range lessons {
		if l.Status != model.LessonStatusCompleted {
			continue
		}
		if l.PaymentStatus == model.PaymentStatusPaid {
			paid += l.Price
		} else {
			unpaid += l.Price
		}
	}

	sb.WriteString(fmt.Sprintf("\n📚 Ders sayısı: <b>%d</b>\n", len(lessons)))
	sb.WriteString(fmt.Sprintf("💰 Ödenen: %s\n", formatting.FormatPrice(paid)))
	sb.WriteString(fmt.Sprintf("⏳ Bekleyen Ödeme: %s\n", formatting.FormatPrice(unpaid)))

	if len(lessons) > 0 {
		sb.WriteString("\n<b>Son dersler</b>\n")
		for i, l := range lessons {
			if i == 5 {
				break
			}
			sb.WriteString(fmt.Sprintf("%s %s %s · %s\n",
				formatting.GetLessonStatusDisplay(l.Status).Emoji,
				formatting.FormatShortDate(l.Date), l.Time,
				formatting.Escape(formatting.Truncate(l.Topic, 40))))
		}
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📅 Ders Planla", callbacktypes.StudentNewLesson+student.ID)).
		Row(keyboard.Button("🗑 Öğrenciyi Sil", callbacktypes.StudentDelete+student.ID)).
		AddBackButton(callbacktypes.StudentsPage + "0").
		Build()

	return sb.String(), kb
}

// BuildDeleteStudentScreen подтверждение удаления ученика
func BuildDeleteStudentScreen(student *model.Student, lessonCount int) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("⚠️ <b>%s</b>\n\n"+
		"Emin misiniz? Bu öğrenciye ait tüm ders geçmişi silinecek.\n"+
		"Silinecek ders sayısı: <b>%d</b>",
		formatting.Escape(student.Name), lessonCount)

	kb := keyboard.NewBuilder().
		Row(keyboard.ConfirmCancelRow(
			"🗑 Evet, sil",
			callbacktypes.StudentDeleteConfirm+student.ID,
			callbacktypes.StudentView+student.ID,
		)...).
		Build()

	return text, kb
}

// StudentNamePrompt первый шаг добавления ученика
func StudentNamePrompt() (string, *models.InlineKeyboardMarkup) {
	text := "👤 <b>Yeni Öğrenci Bilgileri</b>\n\nAd Soyad:"
	return text, keyboard.NewBuilder().AddCancelButton().Build()
}

// StudentLevelPrompt выбор уровня
func StudentLevelPrompt(name string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("👤 <b>%s</b>\n\nSeviye seçin:", formatting.Escape(name))
	return text, LevelKeyboard(callbacktypes.StudentLevel)
}

// StudentEmailPrompt необязательный e-mail
func StudentEmailPrompt() (string, *models.InlineKeyboardMarkup) {
	return "📧 E-posta (İsteğe Bağlı):", SkipKeyboard()
}

// StudentPhonePrompt необязательный телефон
func StudentPhonePrompt() (string, *models.InlineKeyboardMarkup) {
	return "📞 Telefon (İsteğe Bağlı):", SkipKeyboard()
}

// LevelKeyboard кнопки уровней; в callback передаётся индекс в model.StudentLevels
func LevelKeyboard(prefix string) *models.InlineKeyboardMarkup {
	levels := model.StudentLevels()
	buttons := make([]models.InlineKeyboardButton, len(levels))
	for i, level := range levels {
		buttons[i] = keyboard.Button(string(level), prefix+strconv.Itoa(i))
	}
	return keyboard.NewBuilder().Grid(2, buttons...).AddCancelButton().Build()
}

// LevelByIndex уровень по индексу из callback
func LevelByIndex(i int) (model.StudentLevel, bool) {
	levels := model.StudentLevels()
	if i < 0 || i >= len(levels) {
		return "", false
	}
	return levels[i], true
}

// SkipKeyboard "Atla" для необязательных полей
func SkipKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("⏭ Atla", callbacktypes.StudentSkip)).
		AddCancelButton().
		Build()
}

// LessonsOfStudent занятия ученика, новые сверху
func LessonsOfStudent(lessons []model.Lesson, studentID string) []model.Lesson {
	var out []model.Lesson
	for _, l := range lessons {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	return service.SortLessonsNewestFirst(out)
}
