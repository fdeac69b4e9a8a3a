package common

import (
	"fmt"
	"strconv"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// QuizCounts варианты количества вопросов
var QuizCounts = []int{3, 5, 10}

// QuizTopicPrompt первый шаг генератора тестов
func QuizTopicPrompt() (string, *models.InlineKeyboardMarkup) {
	text := "📝 <b>Sınav Hazırlayıcı</b>\n\n" +
		"Konuyu seçin, yapay zeka saniyeler içinde sınav hazırlasın.\n\n" +
		"<i>Örn: İntegral Alma Kuralları, Üçgenlerde Benzerlik</i>"
	return text, keyboard.NewBuilder().AddCancelButton().Build()
}

// QuizLevelPrompt выбор уровня
func QuizLevelPrompt(topic string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("📝 <b>%s</b>\n\nSeviye seçin:", formatting.Escape(topic))
	return text, LevelKeyboard(callbacktypes.QuizLevel)
}

// QuizCountPrompt выбор количества вопросов
func QuizCountPrompt(topic string, level model.StudentLevel) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("📝 <b>%s</b> · %s\n\nSoru sayısı:", formatting.Escape(topic), level)

	buttons := make([]models.InlineKeyboardButton, len(QuizCounts))
	for i, n := range QuizCounts {
		buttons[i] = keyboard.Button(fmt.Sprintf("%d Soru", n), callbacktypes.QuizCount+strconv.Itoa(n))
	}
	return text, keyboard.NewBuilder().Row(buttons...).AddCancelButton().Build()
}

// BuildQuizScreen готовый тест; ответы скрыты под спойлером
func BuildQuizScreen(quiz *model.GeneratedQuiz) (string, *models.InlineKeyboardMarkup) {
	sections := []string{
		fmt.Sprintf("📝 <b>%s</b> · %s\n\n", formatting.Escape(quiz.Topic), formatting.Escape(quiz.Level)),
	}
	for i, q := range quiz.Questions {
		sections = append(sections, fmt.Sprintf("<b>%d.</b> %s\n\n", i+1, formatting.Escape(q.Question)))
	}

	sections = append(sections, "🔑 <b>Cevap Anahtarı</b>\n")
	for i, q := range quiz.Questions {
		sections = append(sections, fmt.Sprintf("<b>%d.</b> <tg-spoiler>%s</tg-spoiler>\n", i+1, formatting.Escape(q.Answer)))
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📋 Metni Kopyala", callbacktypes.QuizCopy),
			keyboard.Button("🔄 Yeni Sınav", callbacktypes.QuizAgain),
		).
		AddMainMenuButton().
		Build()

	return fitSections(sections), kb
}

// QuizCopyText простой текст теста в блоке <pre> для копирования
func QuizCopyText(quiz *model.GeneratedQuiz) string {
	// запас под HTML-экранирование
	body := formatting.Truncate(quiz.Text(), 3500)
	return "<pre>" + formatting.Escape(body) + "</pre>"
}
