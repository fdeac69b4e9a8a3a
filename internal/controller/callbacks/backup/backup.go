package backup

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBackup раздел резервных копий
func HandleBackup(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		text, kb := common.BuildBackupScreen(h.Tutor.Snapshot())
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "show backup")
			return
		}
		hc.Answer("")
	})
}

// HandleExport отправляет резервную копию в JSON
func HandleExport(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		filename, body, err := h.Transfer.ExportJSON(h.Tutor.Snapshot(), h.Now())
		if err != nil {
			common.HandleError(hc, err, "export json")
			return
		}
		if err := hc.SendDocument(filename, body, "💾 Yedek dosyası"); err != nil {
			common.HandleError(hc, err, "send backup")
			return
		}

		h.Logger.Info("Backup exported", zap.String("filename", filename), zap.Int("bytes", len(body)))
		hc.Answer("")
	})
}

// HandleExportXLSX отправляет журнал занятий в Excel
func HandleExportXLSX(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		filename, body, err := h.Transfer.ExportLedgerXLSX(h.Tutor.Snapshot(), h.Now())
		if err != nil {
			common.HandleError(hc, err, "export xlsx")
			return
		}
		if err := hc.SendDocument(filename, body, "📗 Ders defteri"); err != nil {
			common.HandleError(hc, err, "send ledger")
			return
		}

		h.Logger.Info("Ledger exported", zap.String("filename", filename), zap.Int("bytes", len(body)))
		hc.Answer("")
	})
}

// HandleImport ждёт файл резервной копии
func HandleImport(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.SetState(callbacktypes.UserState(state.StateAwaitImportFile))

		text, kb := common.ImportPrompt()
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "prompt import file")
			return
		}
		hc.Answer("")
	})
}

// HandleImportConfirm заменяет все данные содержимым файла
func HandleImportConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		raw, _ := hc.GetData(callbacktypes.DataImport)
		incoming, ok := raw.(model.AppData)
		if !ok {
			common.HandleError(hc, common.ErrSessionLost, "load import data")
			return
		}

		if err := h.Tutor.Replace(ctx, incoming); err != nil {
			common.HandleError(hc, err, "replace data")
			return
		}
		hc.ClearState()

		text, kb := common.BuildMainMenuScreen()
		if err := hc.EditMessage("✅ Veriler yedekten geri yüklendi.\n\n"+text, kb); err != nil {
			common.HandleError(hc, err, "show main menu")
			return
		}
		hc.Answer("✅ Geri yüklendi")
	})
}

// HandleImportCancel отказ от восстановления
func HandleImportCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()

		kb := keyboard.NewBuilder().AddBackButton(callbacktypes.NavBackup).Build()
		if err := hc.EditMessage("✖️ Geri yükleme iptal edildi. Verileriniz değişmedi.", kb); err != nil {
			common.HandleError(hc, err, "cancel import")
			return
		}
		hc.Answer("")
	})
}
