package common

import (
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// BuildBackupScreen раздел резервных копий
func BuildBackupScreen(data model.AppData) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("💾 <b>Yedekleme</b>\n\n"+
		"Öğrenci: <b>%d</b> · Ders: <b>%d</b> · Not: <b>%d</b>\n\n"+
		"🛡 <b>Veri Güvenliği Hatırlatması</b>\n"+
		"Verileriniz yalnızca bu sunucuda saklanır. Düzenli olarak yedek indirip güvenli bir yerde saklayın.",
		len(data.Students), len(data.Lessons), len(data.Todos))

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("💾 Yedek İndir (JSON)", callbacktypes.BackupExport)).
		Row(keyboard.Button("📗 Excel Olarak İndir", callbacktypes.BackupExportXLSX)).
		Row(keyboard.Button("📤 Yedekten Geri Yükle", callbacktypes.BackupImport)).
		AddMainMenuButton().
		Build()

	return text, kb
}

// ImportPrompt ожидание файла резервной копии
func ImportPrompt() (string, *models.InlineKeyboardMarkup) {
	text := "📤 <b>Yedekten Geri Yükle</b>\n\nYedek dosyasını (<code>.json</code>) gönderin."
	return text, keyboard.NewBuilder().AddCancelButton().Build()
}

// BuildImportConfirmScreen подтверждение замены данных
func BuildImportConfirmScreen(incoming model.AppData) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("📦 Dosyada <b>%d</b> öğrenci, <b>%d</b> ders, <b>%d</b> not bulundu.\n\n"+
		"⚠️ Mevcut veriler silinecek ve yedekten geri yüklenecek. Emin misiniz?",
		len(incoming.Students), len(incoming.Lessons), len(incoming.Todos))

	kb := keyboard.NewBuilder().
		Row(keyboard.ConfirmCancelRow("✅ Evet, yükle", callbacktypes.BackupImportConfirm, callbacktypes.BackupImportCancel)...).
		Build()

	return text, kb
}
