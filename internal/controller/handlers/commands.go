package handlers

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/dashboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Команды доходят сюда только после Gate, пользователь уже вошёл

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.stateManager.ClearState(update.Message.From.ID)

	text, kb := common.BuildMainMenuScreen()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "❓ <b>Komutlar</b>\n\n" +
		"/start - Ana menü\n" +
		"/panel - Genel bakış ve haftalık gelir\n" +
		"/ogrenciler - Öğrenciler\n" +
		"/dersler - Dersler\n" +
		"/asistan - YZ ders planlayıcı\n" +
		"/sinav - Sınav hazırlayıcı\n" +
		"/yapilacaklar - Yapılacaklar listesi\n" +
		"/yedek - Yedekleme\n" +
		"/cancel - Devam eden işlemi iptal et\n" +
		"/logout - Çıkış yap"

	h.sendScreen(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendScreen(ctx, b, update.Message.Chat.ID, "İptal edilecek bir işlem yok.", nil)
		return
	}

	h.stateManager.ClearState(telegramID)

	text, kb := common.BuildMainMenuScreen()
	h.sendScreen(ctx, b, update.Message.Chat.ID, "✖️ İşlem iptal edildi.\n\n"+text, kb)
}

// HandlePanel /panel
func (h *Handlers) HandlePanel(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return dashboard.BuildScreen(h.deps)
	})
}

// HandleStudents /ogrenciler
func (h *Handlers) HandleStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return common.BuildStudentsScreen(h.deps.Tutor.Snapshot(), 0)
	})
}

// HandleLessons /dersler
func (h *Handlers) HandleLessons(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return common.BuildLessonsScreen(h.deps.Tutor.Snapshot(), h.deps.Tutor.SortedLessons(), 0)
	})
}

// HandlePlanner /asistan
func (h *Handlers) HandlePlanner(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return common.BuildPlannerScreen(h.deps.Tutor.Snapshot(), h.deps.Tutor.EligibleForPlanning(), 0)
	})
}

// HandleTodos /yapilacaklar
func (h *Handlers) HandleTodos(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return common.BuildTodosScreen(h.deps.Tutor.Snapshot().Todos)
	})
}

// HandleBackup /yedek
func (h *Handlers) HandleBackup(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, func() (string, *models.InlineKeyboardMarkup) {
		return common.BuildBackupScreen(h.deps.Tutor.Snapshot())
	})
}

// HandleQuiz /sinav - сразу ждёт тему
func (h *Handlers) HandleQuiz(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetState(telegramID, state.StateQuizTopic)

	text, kb := common.QuizTopicPrompt()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleLogout /logout
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.deps.Auth.Logout(telegramID)
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetState(telegramID, state.StateEnterPassphrase)
	h.logger.Info("User logged out", zap.Int64("telegram_id", telegramID))

	h.sendScreen(ctx, b, update.Message.Chat.ID, "🔒 Çıkış yapıldı.\n\n"+common.BuildLoginScreen(true), nil)
}

// HandleUnknown всё, что не подошло ни под один обработчик
func (h *Handlers) HandleUnknown(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendScreen(ctx, b, update.Message.Chat.ID, "🤔 Anlayamadım. Komutlar için /help", nil)
}

// showScreen очищает диалог и отправляет экран новым сообщением
func (h *Handlers) showScreen(
	ctx context.Context,
	b *bot.Bot,
	update *models.Update,
	build func() (string, *models.InlineKeyboardMarkup),
) {
	if update.Message == nil {
		return
	}
	h.stateManager.ClearState(update.Message.From.ID)

	text, kb := build()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}
