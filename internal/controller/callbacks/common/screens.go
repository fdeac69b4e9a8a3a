package common

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

const (
	// MaxMessageLength лимит Telegram на текст сообщения
	MaxMessageLength = 4096

	// GeneratingText показывается пока ждём ответ от модели
	GeneratingText = "⏳ <b>Oluşturuluyor...</b>\n\nBu işlem birkaç saniye sürebilir."
)

// BuildMainMenuScreen главное меню
func BuildMainMenuScreen() (string, *models.InlineKeyboardMarkup) {
	text := "🧮 <b>Matematik Asistanı</b>\n" +
		"<i>Özel Ders Yönetim Sistemi</i>\n\n" +
		"Bir bölüm seçin:"
	return text, keyboard.MainMenu()
}

// BuildLoginScreen приглашение ко входу или созданию пароля
func BuildLoginScreen(hasPassphrase bool) string {
	var sb strings.Builder
	sb.WriteString("🧮 <b>Matematik Asistanı</b>\n")
	sb.WriteString("<i>Özel Ders Yönetim Sistemi</i>\n\n")
	if hasPassphrase {
		sb.WriteString("🔐 <b>Giriş Yap</b>\n\nŞifrenizi gönderin.")
	} else {
		sb.WriteString("🔐 <b>Şifre Oluştur ve Başla</b>\n\n")
		sb.WriteString(fmt.Sprintf("En az %d karakterlik yeni bir şifre gönderin.", service.MinPassphraseLength))
	}
	return sb.String()
}

// BuildDashboardScreen панель: статистика, доход за неделю, заметки
func BuildDashboardScreen(
	stats service.DashboardStats,
	week []service.DayIncome,
	todos []model.TodoItem,
) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("📊 <b>Genel Bakış</b>\n\n")
	sb.WriteString(fmt.Sprintf("👥 Toplam Öğrenci: <b>%d</b>\n", stats.TotalStudents))
	sb.WriteString(fmt.Sprintf("🗓 Yaklaşan Dersler: <b>%d</b>\n", stats.UpcomingLessons))
	sb.WriteString(fmt.Sprintf("✅ Tamamlanan: <b>%d</b>\n", stats.CompletedLessons))
	sb.WriteString(fmt.Sprintf("⏳ Bekleyen Ödeme: <b>%s</b>\n\n", formatting.FormatPrice(stats.UnpaidAmount)))

	sb.WriteString("💵 <b>Haftalık Gelir Özeti</b>\n")
	for _, d := range week {
		sb.WriteString(fmt.Sprintf("<code>%s %s</code>  %s\n",
			d.DayName, d.Date.Format("02.01"), formatting.FormatPrice(d.Income)))
	}
	sb.WriteString(fmt.Sprintf("Toplam: <b>%s</b>\n\n", formatting.FormatPrice(service.TotalIncome(week))))

	open := 0
	for _, t := range todos {
		if !t.Completed {
			open++
		}
	}
	sb.WriteString(fmt.Sprintf("📝 Yapılacaklar: <b>%d</b> açık / %d toplam", open, len(todos)))

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📈 Gelir Grafiği", callbacktypes.DashboardChart),
			keyboard.Button("📝 Yapılacaklar", callbacktypes.NavTodos),
		).
		Row(
			keyboard.Button("💾 Yedek İndir", callbacktypes.BackupExport),
			keyboard.Button("📗 Excel", callbacktypes.BackupExportXLSX),
		).
		Row(keyboard.Button("📤 Yedekten Geri Yükle", callbacktypes.BackupImport)).
		AddMainMenuButton().
		Build()

	return sb.String(), kb
}

// BuildTodosScreen список заметок с кнопками переключения и удаления
func BuildTodosScreen(todos []model.TodoItem) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("📝 <b>Yapılacaklar</b>\n\n")

	kb := keyboard.NewBuilder()
	if len(todos) == 0 {
		sb.WriteString("<i>Henüz bir not yok.</i>")
	}
	for _, t := range todos {
		mark := "⬜"
		line := formatting.Escape(t.Text)
		if t.Completed {
			mark = "✅"
			line = "<s>" + line + "</s>"
		}
		sb.WriteString(mark + " " + line + "\n")

		kb.Row(
			keyboard.Button(mark+" "+formatting.Truncate(t.Text, 32), callbacktypes.TodoToggle+t.ID),
			keyboard.Button("🗑", callbacktypes.TodoDelete+t.ID),
		)
	}

	kb.Row(keyboard.Button("➕ Yeni not ekle...", callbacktypes.TodoAdd)).
		AddBackButton(callbacktypes.NavDashboard)

	return sb.String(), kb.Build()
}

// fitSections склеивает готовые HTML-блоки, пока текст укладывается в лимит сообщения.
// Telegram считает лимит в UTF-16 единицах.
func fitSections(sections []string) string {
	const ellipsis = "\n…"

	var sb strings.Builder
	length := 0
	for _, s := range sections {
		n := utf16Len(s)
		if length+n > MaxMessageLength-utf16Len(ellipsis) {
			sb.WriteString(ellipsis)
			break
		}
		sb.WriteString(s)
		length += n
	}
	return sb.String()
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// studentNames id -> имя
func studentNames(data model.AppData) map[string]string {
	names := make(map[string]string, len(data.Students))
	for _, s := range data.Students {
		names[s.ID] = s.Name
	}
	return names
}

func nameOf(names map[string]string, studentID string) string {
	if name, ok := names[studentID]; ok {
		return name
	}
	return service.UnknownStudentName
}
