package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDocument принимает файл резервной копии
func (h *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !IsDocument(update) {
		return
	}

	msg := update.Message
	telegramID := msg.From.ID
	doc := msg.Document

	if h.stateManager.GetState(telegramID) != state.StateAwaitImportFile {
		h.sendError(ctx, b, msg.Chat.ID, "📎 Yedek yüklemek için önce /yedek → 📤 Yedekten Geri Yükle seçin.")
		return
	}

	if !strings.EqualFold(filepath.Ext(doc.FileName), ".json") {
		h.sendError(ctx, b, msg.Chat.ID, common.ErrorMessage(service.ErrInvalidImport))
		return
	}
	if doc.FileSize > MaxImportFileSize {
		h.sendError(ctx, b, msg.Chat.ID, fmt.Sprintf("❌ Dosya çok büyük (en fazla %d MB).", MaxImportFileSize>>20))
		return
	}

	raw, err := h.fetchDocument(ctx, b, doc)
	if err != nil {
		h.logger.Error("Failed to download import file", zap.String("file_name", doc.FileName), zap.Error(err))
		h.sendError(ctx, b, msg.Chat.ID, "❌ Dosya indirilemedi, tekrar deneyin.")
		return
	}

	incoming, err := h.deps.Transfer.ParseImport(raw)
	if err != nil {
		h.logger.Warn("Import rejected", zap.String("file_name", doc.FileName), zap.Error(err))
		h.sendError(ctx, b, msg.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.stateManager.SetData(telegramID, callbacktypes.DataImport, incoming)

	text, kb := common.BuildImportConfirmScreen(incoming)
	h.sendScreen(ctx, b, msg.Chat.ID, text, kb)
}

func (h *Handlers) fetchDocument(ctx context.Context, b *bot.Bot, doc *models.Document) ([]byte, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: doc.FileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return h.httpDownload(ctx, b.FileDownloadLink(file), MaxImportFileSize)
}

// httpDownload скачивает не больше limit байт
func (h *Handlers) httpDownload(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("download: file exceeds %d bytes", limit)
	}
	return body, nil
}
