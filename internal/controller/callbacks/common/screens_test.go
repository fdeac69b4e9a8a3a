package common

import (
	"strings"
	"testing"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenData() model.AppData {
	return model.AppData{
		Students: []model.Student{
			{ID: "s1", Name: "Ali <Yılmaz>", Level: model.LevelHighSchool},
		},
		Lessons: []model.Lesson{
			{
				ID: "l1", StudentID: "s1", Date: "2024-05-01", Time: "10:00", DurationMinutes: 60,
				Topic: "Türev", Price: 500,
				Status: model.LessonStatusScheduled, PaymentStatus: model.PaymentStatusPending,
			},
			{
				ID: "l2", StudentID: "gone", Date: "2024-05-02", Time: "09:00", DurationMinutes: 45,
				Topic: "İntegral", Price: 400,
				Status: model.LessonStatusCompleted, PaymentStatus: model.PaymentStatusPaid,
			},
		},
	}
}

func callbacks(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.CallbackData)
		}
	}
	return out
}

func TestBuildStudentScreenEscapesName(t *testing.T) {
	data := screenData()
	text, kb := BuildStudentScreen(&data.Students[0], LessonsOfStudent(data.Lessons, "s1"))

	assert.Contains(t, text, "Ali &lt;Yılmaz&gt;")
	assert.NotContains(t, text, "<Yılmaz>")
	assert.Contains(t, callbacks(kb), callbacktypes.StudentDelete+"s1")
	assert.Contains(t, callbacks(kb), callbacktypes.StudentNewLesson+"s1")
}

func TestBuildLessonsScreenUnknownStudent(t *testing.T) {
	data := screenData()
	_, kb := BuildLessonsScreen(data, service.SortLessonsNewestFirst(data.Lessons), 0)

	require.GreaterOrEqual(t, len(kb.InlineKeyboard), 2)
	first := kb.InlineKeyboard[0][0]
	assert.Equal(t, callbacktypes.LessonView+"l2", first.CallbackData)
	assert.Contains(t, first.Text, service.UnknownStudentName)
}

func TestBuildLessonScreenActions(t *testing.T) {
	data := screenData()

	_, kb := BuildLessonScreen(&data.Lessons[0], "Ali")
	assert.Contains(t, callbacks(kb), callbacktypes.PlannerGenerate+"l1")

	withPlan := data.Lessons[1]
	withPlan.AIGeneratedPlan = &model.AILessonPlan{Objective: "x"}
	_, kb = BuildLessonScreen(&withPlan, "Ali")
	assert.Contains(t, callbacks(kb), callbacktypes.LessonPlan+"l2")
	assert.NotContains(t, callbacks(kb), callbacktypes.PlannerGenerate+"l2")
}

func TestBuildPlanScreenSaveButton(t *testing.T) {
	data := screenData()
	plan := &model.AILessonPlan{
		Objective:        "Türev kurallarını kavramak",
		KeyConcepts:      []string{"Limit", "Eğim"},
		PracticeProblems: []model.PracticeProblem{{Problem: "f(x)=x^2 ise f'(x)?", Solution: "2x"}},
		HomeworkIdeas:    []string{"Alıştırma 1-10"},
	}

	text, kb := BuildPlanScreen(plan, &data.Lessons[0], "Ali", false)
	assert.Contains(t, text, "Hedef")
	assert.Contains(t, text, "Ana Kavramlar")
	assert.Contains(t, text, "Çözüm:")
	assert.Contains(t, callbacks(kb), callbacktypes.PlannerSave+"l1")

	_, kb = BuildPlanScreen(plan, &data.Lessons[0], "Ali", true)
	assert.NotContains(t, callbacks(kb), callbacktypes.PlannerSave+"l1")
}

func TestFitSectionsRespectsLimit(t *testing.T) {
	long := strings.Repeat("a", 1000)
	sections := []string{long, long, long, long, long}

	text := fitSections(sections)
	assert.LessOrEqual(t, utf8.RuneCountInString(text), MaxMessageLength)
	assert.True(t, strings.HasSuffix(text, "…"))

	assert.Equal(t, "ab", fitSections([]string{"a", "b"}))
}

func TestFitSectionsCountsUTF16Units(t *testing.T) {
	// 📚 занимает две UTF-16 единицы
	block := strings.Repeat("📚", 100) + "\n"
	sections := make([]string, 30)
	for i := range sections {
		sections[i] = block
	}

	text := fitSections(sections)
	assert.LessOrEqual(t, len(utf16.Encode([]rune(text))), MaxMessageLength)
	assert.True(t, strings.HasSuffix(text, "…"))
	assert.Equal(t, 202, utf16Len(block))
}

func TestBuildQuizScreenHidesAnswers(t *testing.T) {
	quiz := &model.GeneratedQuiz{
		Topic: "Kesirler", Level: string(model.LevelMiddleSchool),
		Questions: []model.QuizQuestion{{Question: "1/2 + 1/4 = ?", Answer: "3/4"}},
	}

	text, kb := BuildQuizScreen(quiz)
	assert.Contains(t, text, "<tg-spoiler>3/4</tg-spoiler>")
	assert.Contains(t, text, "Cevap Anahtarı")
	assert.Contains(t, callbacks(kb), callbacktypes.QuizCopy)

	copyText := QuizCopyText(quiz)
	assert.True(t, strings.HasPrefix(copyText, "<pre>"))
	assert.Contains(t, copyText, "3/4")
}

func TestLevelByIndex(t *testing.T) {
	level, ok := LevelByIndex(2)
	assert.True(t, ok)
	assert.Equal(t, model.LevelHighSchool, level)

	_, ok = LevelByIndex(4)
	assert.False(t, ok)
}

func TestGenerateIncomeChart(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	days := service.NewDashboardService().WeeklyIncome(screenData(), now)

	img, err := GenerateIncomeChart(days)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), img[:4])
}

func TestChartMaximum(t *testing.T) {
	assert.Equal(t, 100.0, chartMaximum(nil))
	assert.Equal(t, 500.0, chartMaximum([]service.DayIncome{{Income: 450}}))
	assert.Equal(t, 200.0, chartMaximum([]service.DayIncome{{Income: 100.5}}))
	assert.Equal(t, 300.0, chartMaximum([]service.DayIncome{{Income: 299.99}, {Income: 20}}))
	assert.Equal(t, 300.0, chartMaximum([]service.DayIncome{{Income: 300}}))
}
