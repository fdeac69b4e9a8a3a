package service

import (
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStudentAppends(t *testing.T) {
	data := model.AppData{Students: []model.Student{}, Lessons: []model.Lesson{}, Todos: []model.TodoItem{}}

	next := AddStudent(data, model.Student{ID: "x", Name: "Ali", Level: model.LevelHighSchool})

	require.Len(t, next.Students, 1)
	assert.Equal(t, "Ali", next.Students[0].Name)
	assert.Equal(t, model.LevelHighSchool, next.Students[0].Level)
	assert.Empty(t, data.Students, "input must not change")
}

func TestDeleteStudentCascadesLessons(t *testing.T) {
	data := fixtureData()

	next := DeleteStudent(data, "s1")

	require.Len(t, next.Students, 1)
	assert.Equal(t, "s2", next.Students[0].ID)
	require.Len(t, next.Lessons, 1)
	assert.Equal(t, "l2", next.Lessons[0].ID)
	assert.Equal(t, data.Todos, next.Todos)

	// исходный агрегат не изменился
	assert.Len(t, data.Students, 2)
	assert.Len(t, data.Lessons, 3)
	assert.Equal(t, "l1", data.Lessons[0].ID)
}

func TestDeleteStudentUnknownIDKeepsEverything(t *testing.T) {
	data := fixtureData()
	next := DeleteStudent(data, "missing")
	assert.Equal(t, data, next)
}

func TestUpdateLessonReplacesByID(t *testing.T) {
	data := fixtureData()
	updated := data.Lessons[1]
	updated.Topic = "Ondalık sayılar"
	updated.Price = 450

	next := UpdateLesson(data, updated)

	assert.Equal(t, "Ondalık sayılar", next.Lessons[1].Topic)
	assert.Equal(t, 450.0, next.Lessons[1].Price)
	assert.Equal(t, "Kesirler", data.Lessons[1].Topic)
	assert.Equal(t, data.Lessons[0], next.Lessons[0])
}

func TestUpdateLessonUnknownIDIsNoop(t *testing.T) {
	data := fixtureData()
	next := UpdateLesson(data, model.Lesson{ID: "nope", Topic: "x"})
	assert.Equal(t, data, next)
}

func TestToggleLessonStatusCycle(t *testing.T) {
	data := fixtureData()

	next, ok := ToggleLessonStatus(data, "l1")
	require.True(t, ok)
	assert.Equal(t, model.LessonStatusCompleted, next.Lessons[0].Status)

	next, _ = ToggleLessonStatus(next, "l1")
	assert.Equal(t, model.LessonStatusCancelled, next.Lessons[0].Status)

	next, _ = ToggleLessonStatus(next, "l1")
	assert.Equal(t, model.LessonStatusScheduled, next.Lessons[0].Status)

	assert.Equal(t, model.LessonStatusScheduled, data.Lessons[0].Status)

	_, ok = ToggleLessonStatus(data, "missing")
	assert.False(t, ok)
}

func TestToggleLessonPayment(t *testing.T) {
	data := fixtureData()

	next, ok := ToggleLessonPayment(data, "l2")
	require.True(t, ok)
	assert.Equal(t, model.PaymentStatusPaid, next.Lessons[1].PaymentStatus)
	assert.Equal(t, model.LessonStatusCompleted, next.Lessons[1].Status)

	next, _ = ToggleLessonPayment(next, "l2")
	assert.Equal(t, model.PaymentStatusPending, next.Lessons[1].PaymentStatus)
}

func TestAttachPlanReplacesPrevious(t *testing.T) {
	data := fixtureData()

	next, ok := AttachPlan(data, "l1", model.AILessonPlan{Objective: "ilk"})
	require.True(t, ok)
	next, _ = AttachPlan(next, "l1", model.AILessonPlan{Objective: "ikinci"})

	require.NotNil(t, next.Lessons[0].AIGeneratedPlan)
	assert.Equal(t, "ikinci", next.Lessons[0].AIGeneratedPlan.Objective)
	assert.Nil(t, data.Lessons[0].AIGeneratedPlan)
}

func TestTodoHelpers(t *testing.T) {
	data := fixtureData()

	next := AddTodo(data, model.TodoItem{ID: "t2", Text: "Veli toplantısı"})
	require.Len(t, next.Todos, 2)

	next, ok := ToggleTodo(next, "t2")
	require.True(t, ok)
	assert.True(t, next.Todos[1].Completed)

	next, ok = DeleteTodo(next, "t1")
	require.True(t, ok)
	require.Len(t, next.Todos, 1)
	assert.Equal(t, "t2", next.Todos[0].ID)

	_, ok = DeleteTodo(next, "t1")
	assert.False(t, ok)
	assert.Len(t, data.Todos, 1)
}

func TestReplaceAllNormalizes(t *testing.T) {
	next := ReplaceAll(fixtureData(), model.AppData{})
	assert.NotNil(t, next.Students)
	assert.NotNil(t, next.Lessons)
	assert.NotNil(t, next.Todos)
	assert.Empty(t, next.Students)
}

func TestSortLessonsNewestFirst(t *testing.T) {
	data := fixtureData()

	sorted := SortLessonsNewestFirst(data.Lessons)

	ids := make([]string, 0, len(sorted))
	for _, l := range sorted {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"l3", "l2", "l1"}, ids)
	assert.Equal(t, "l1", data.Lessons[0].ID)
}
