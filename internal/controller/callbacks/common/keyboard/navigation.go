package keyboard

import (
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot/models"
)

// BackButton создаёт кнопку "Geri"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Geri", callbackData)
}

// MainMenuButton создаёт кнопку "Ana Menü"
func MainMenuButton() models.InlineKeyboardButton {
	return Button("🏠 Ana Menü", callbacktypes.BackToMain)
}

// CancelButton прерывает текущий диалог
func CancelButton() models.InlineKeyboardButton {
	return Button("✖️ Vazgeç", callbacktypes.Cancel)
}

// ConfirmCancelRow ряд с кнопками подтверждения и отмены
func ConfirmCancelRow(confirmText, confirmCallback, cancelCallback string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button(confirmText, confirmCallback),
		Button("❌ Hayır", cancelCallback),
	}
}

// AddBackButton добавляет кнопку "Geri" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

// AddMainMenuButton добавляет кнопку "Ana Menü" к builder
func (b *Builder) AddMainMenuButton() *Builder {
	return b.Row(MainMenuButton())
}

// AddCancelButton добавляет кнопку отмены диалога
func (b *Builder) AddCancelButton() *Builder {
	return b.Row(CancelButton())
}

// MainMenu клавиатура разделов
func MainMenu() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(Button("📊 Panel", callbacktypes.NavDashboard)).
		Row(
			Button("👥 Öğrenciler", callbacktypes.NavStudents),
			Button("📅 Dersler", callbacktypes.NavLessons),
		).
		Row(
			Button("🧠 Asistan", callbacktypes.NavPlanner),
			Button("📝 Sınav Hazırla", callbacktypes.NavQuiz),
		).
		Row(Button("💾 Yedekleme", callbacktypes.NavBackup)).
		Row(Button("🔒 Çıkış", callbacktypes.Logout)).
		Build()
}
