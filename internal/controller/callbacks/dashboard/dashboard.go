package dashboard

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BuildScreen собирает панель по текущим данным
func BuildScreen(h *callbacktypes.Handler) (string, *models.InlineKeyboardMarkup) {
	data := h.Tutor.Snapshot()
	stats := h.Dashboard.Stats(data)
	week := h.Dashboard.WeeklyIncome(data, h.Now())
	return common.BuildDashboardScreen(stats, week, data.Todos)
}

// HandleDashboard показывает панель
func HandleDashboard(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		text, kb := BuildScreen(h)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "show dashboard")
			return
		}
		hc.Answer("")
	})
}

// HandleChart отправляет график дохода за неделю отдельным фото
func HandleChart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		week := h.Dashboard.WeeklyIncome(h.Tutor.Snapshot(), h.Now())

		img, err := common.GenerateIncomeChart(week)
		if err != nil {
			common.HandleError(hc, err, "generate income chart")
			return
		}

		caption := fmt.Sprintf("💵 <b>Haftalık Gelir Özeti</b>\nToplam: %s",
			formatting.FormatPrice(service.TotalIncome(week)))
		if err := hc.SendPhoto("gelir.png", img, caption); err != nil {
			common.HandleError(hc, err, "send income chart")
			return
		}

		h.Logger.Debug("Income chart sent", zap.Int64("telegram_id", hc.TelegramID), zap.Int("bytes", len(img)))
		hc.Answer("")
	})
}
