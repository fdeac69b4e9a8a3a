package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/lessons"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/students"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// dialogMessage текстовое сообщение внутри диалога
type dialogMessage struct {
	telegramID int64
	chatID     int64
	text       string
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !IsDialogText(update) {
		return
	}

	msg := dialogMessage{
		telegramID: update.Message.From.ID,
		chatID:     update.Message.Chat.ID,
		text:       strings.TrimSpace(update.Message.Text),
	}
	currentState := h.stateManager.GetState(msg.telegramID)

	h.logger.Debug("Dialog message",
		zap.Int64("telegram_id", msg.telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		text, kb := common.BuildMainMenuScreen()
		h.sendScreen(ctx, b, msg.chatID, text, kb)

	// Ученик
	case state.StateAddStudentName:
		h.handleStudentName(ctx, b, msg)
	case state.StateAddStudentLevel:
		h.handleStudentLevel(ctx, b, msg)
	case state.StateAddStudentEmail:
		h.handleStudentEmail(ctx, b, msg)
	case state.StateAddStudentPhone:
		h.handleStudentPhone(ctx, b, msg)

	// Занятие
	case state.StateAddLessonStudent:
		h.sendError(ctx, b, msg.chatID, "👆 Lütfen listeden bir öğrenci seçin.")
	case state.StateAddLessonTopic:
		h.handleLessonTopic(ctx, b, msg)
	case state.StateAddLessonDate:
		h.handleLessonDate(ctx, b, msg)
	case state.StateAddLessonTime:
		h.handleLessonTime(ctx, b, msg)
	case state.StateAddLessonDuration:
		h.handleLessonDuration(ctx, b, msg)
	case state.StateAddLessonPrice:
		h.handleLessonPrice(ctx, b, msg)
	case state.StateEditLessonNotes:
		h.handleLessonNotes(ctx, b, msg)

	case state.StateAddTodo:
		h.handleTodo(ctx, b, msg)
	case state.StateQuizTopic:
		h.handleQuizTopic(ctx, b, msg)
	case state.StateAwaitImportFile:
		h.sendError(ctx, b, msg.chatID, "📎 Lütfen <code>.json</code> yedek dosyasını gönderin.")

	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(msg.telegramID)
	}
}

// ========================
// Ученик
// ========================

func (h *Handlers) handleStudentName(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	if msg.text == "" || utf8.RuneCountInString(msg.text) > 100 {
		h.sendError(ctx, b, msg.chatID, "❌ Ad Soyad 1-100 karakter olmalıdır. Tekrar deneyin:")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataStudentName, msg.text)
	h.stateManager.SetState(msg.telegramID, state.StateAddStudentLevel)

	text, kb := common.StudentLevelPrompt(msg.text)
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

// handleStudentLevel уровень введён текстом вместо кнопки: "Lise" или номер 1-4
func (h *Handlers) handleStudentLevel(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	level, ok := parseLevel(msg.text)
	if !ok {
		h.sendError(ctx, b, msg.chatID, "👆 Lütfen seviyeyi butonlardan seçin.")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataStudentLevel, string(level))
	h.stateManager.SetState(msg.telegramID, state.StateAddStudentEmail)

	text, kb := common.StudentEmailPrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleStudentEmail(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	probe := model.Student{
		ID:    "probe",
		Name:  "probe",
		Level: model.LevelHighSchool,
		Email: msg.text,
	}
	if err := model.Validate(probe); err != nil {
		h.sendError(ctx, b, msg.chatID, "❌ Geçersiz e-posta adresi. Tekrar deneyin veya atlayın:")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataStudentEmail, msg.text)
	h.stateManager.SetState(msg.telegramID, state.StateAddStudentPhone)

	text, kb := common.StudentPhonePrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleStudentPhone(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	student, err := students.FinishDialog(ctx, h.deps, msg.telegramID, msg.text)
	if err != nil {
		h.logger.Warn("Failed to add student", zap.Int64("telegram_id", msg.telegramID), zap.Error(err))
		h.sendError(ctx, b, msg.chatID, common.ErrorMessage(err))
		return
	}

	text, kb := common.BuildStudentScreen(student, nil)
	h.sendScreen(ctx, b, msg.chatID, "✅ Öğrenci eklendi\n\n"+text, kb)
}

// ========================
// Занятие
// ========================

func (h *Handlers) handleLessonTopic(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	if msg.text == "" || utf8.RuneCountInString(msg.text) > 200 {
		h.sendError(ctx, b, msg.chatID, "❌ Konu 1-200 karakter olmalıdır. Tekrar deneyin:")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataLessonTopic, msg.text)
	h.stateManager.SetState(msg.telegramID, state.StateAddLessonDate)

	text, kb := common.LessonDatePrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleLessonDate(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	date, ok := formatting.ParseDate(msg.text, h.deps.Now())
	if !ok {
		h.sendError(ctx, b, msg.chatID, "❌ Geçersiz tarih. Örnek: 15.09.2025")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataLessonDate, date)
	h.stateManager.SetState(msg.telegramID, state.StateAddLessonTime)

	text, kb := common.LessonTimePrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleLessonTime(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	clock, ok := formatting.ParseClock(msg.text)
	if !ok {
		h.sendError(ctx, b, msg.chatID, "❌ Geçersiz saat. Örnek: 16:30")
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataLessonTime, clock)
	h.stateManager.SetState(msg.telegramID, state.StateAddLessonDuration)

	text, kb := common.LessonDurationPrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleLessonDuration(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	minutes, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(msg.text, "dk")))
	if err != nil || minutes < LessonMinDuration || minutes > LessonMaxDuration {
		h.sendError(ctx, b, msg.chatID,
			fmt.Sprintf("❌ Süre %d-%d dakika arasında olmalıdır.", LessonMinDuration, LessonMaxDuration))
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataLessonDuration, strconv.Itoa(minutes))
	h.stateManager.SetState(msg.telegramID, state.StateAddLessonPrice)

	text, kb := common.LessonPricePrompt()
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

func (h *Handlers) handleLessonPrice(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	price, ok := formatting.ParsePrice(msg.text)
	if !ok {
		h.sendError(ctx, b, msg.chatID, "❌ Geçersiz ücret. Örnek: 500")
		return
	}

	lesson, err := lessons.FinishDialog(ctx, h.deps, msg.telegramID, price)
	if err != nil {
		h.sendError(ctx, b, msg.chatID, common.ErrorMessage(err))
		return
	}

	text, kb := common.BuildLessonScreen(lesson, h.deps.Tutor.StudentName(lesson.StudentID))
	h.sendScreen(ctx, b, msg.chatID, "✅ Ders planlandı\n\n"+text, kb)
}

func (h *Handlers) handleLessonNotes(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	if utf8.RuneCountInString(msg.text) > NotesMaxLength {
		h.sendError(ctx, b, msg.chatID, fmt.Sprintf("❌ Not en fazla %d karakter olabilir.", NotesMaxLength))
		return
	}

	lessonID := h.stateManager.GetString(msg.telegramID, callbacktypes.DataLessonID)
	lesson := h.deps.Tutor.Lesson(lessonID)
	if lesson == nil {
		h.stateManager.ClearState(msg.telegramID)
		h.sendError(ctx, b, msg.chatID, common.ErrorMessage(common.ErrSessionLost))
		return
	}

	lesson.Notes = msg.text
	if err := h.deps.Tutor.UpdateLesson(ctx, *lesson); err != nil {
		h.logger.Error("Failed to update lesson notes", zap.String("lesson_id", lessonID), zap.Error(err))
		h.sendError(ctx, b, msg.chatID, common.ErrorMessage(err))
		return
	}
	h.stateManager.ClearState(msg.telegramID)

	text, kb := common.BuildLessonScreen(lesson, h.deps.Tutor.StudentName(lesson.StudentID))
	h.sendScreen(ctx, b, msg.chatID, "✅ Not kaydedildi\n\n"+text, kb)
}

// ========================
// Заметки и тесты
// ========================

func (h *Handlers) handleTodo(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	if utf8.RuneCountInString(msg.text) > TodoMaxLength {
		h.sendError(ctx, b, msg.chatID, fmt.Sprintf("❌ Not en fazla %d karakter olabilir.", TodoMaxLength))
		return
	}

	if _, err := h.deps.Tutor.AddTodo(ctx, msg.text); err != nil {
		h.sendError(ctx, b, msg.chatID, common.ErrorMessage(err))
		return
	}
	h.stateManager.ClearState(msg.telegramID)

	text, kb := common.BuildTodosScreen(h.deps.Tutor.Snapshot().Todos)
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

// handleQuizTopic сохраняет тему; состояние остаётся, новое сообщение заменит тему
func (h *Handlers) handleQuizTopic(ctx context.Context, b *bot.Bot, msg dialogMessage) {
	if msg.text == "" || utf8.RuneCountInString(msg.text) > QuizTopicMaxLength {
		h.sendError(ctx, b, msg.chatID,
			fmt.Sprintf("❌ Konu 1-%d karakter olmalıdır.", QuizTopicMaxLength))
		return
	}

	h.stateManager.SetData(msg.telegramID, callbacktypes.DataQuizTopic, msg.text)

	text, kb := common.QuizLevelPrompt(msg.text)
	h.sendScreen(ctx, b, msg.chatID, text, kb)
}

// parseLevel "Lise", "lise" или номер 1-4
func parseLevel(input string) (model.StudentLevel, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		return common.LevelByIndex(n - 1)
	}
	for _, level := range model.StudentLevels() {
		if strings.EqualFold(string(level), input) {
			return level, true
		}
	}
	return "", false
}
