package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTutorService(initial model.AppData) (*TutorService, *memPersistence) {
	p := &memPersistence{initial: initial}
	s := NewTutorService(context.Background(), p, zap.NewNop())

	var n int
	var mu sync.Mutex
	s.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s, p
}

func TestTutorServiceAddStudent(t *testing.T) {
	s, p := newTestTutorService(model.AppData{})

	st, err := s.AddStudent(context.Background(), StudentInput{Name: "  Ali  ", Level: model.LevelHighSchool})
	require.NoError(t, err)
	assert.Equal(t, "Ali", st.Name)
	assert.Equal(t, "id-1", st.ID)

	snap := s.Snapshot()
	require.Len(t, snap.Students, 1)
	assert.Equal(t, model.LevelHighSchool, snap.Students[0].Level)

	require.Len(t, p.saved, 1)
	assert.Equal(t, snap, p.last())
}

func TestTutorServiceAddStudentValidation(t *testing.T) {
	tests := []struct {
		name  string
		input StudentInput
	}{
		{"empty name", StudentInput{Name: "   ", Level: model.LevelHighSchool}},
		{"bad level", StudentInput{Name: "Ali", Level: "Lisans"}},
		{"bad email", StudentInput{Name: "Ali", Level: model.LevelHighSchool, Email: "ali-at-ornek"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := newTestTutorService(model.AppData{})

			_, err := s.AddStudent(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, s.Snapshot().Students)
			assert.Empty(t, p.saved)
		})
	}
}

func TestTutorServiceDeleteStudentCascade(t *testing.T) {
	s, p := newTestTutorService(fixtureData())

	require.NoError(t, s.DeleteStudent(context.Background(), "s1"))

	snap := s.Snapshot()
	assert.Len(t, snap.Students, 1)
	require.Len(t, snap.Lessons, 1)
	assert.Equal(t, "s2", snap.Lessons[0].StudentID)
	assert.Len(t, p.saved, 1)

	assert.ErrorIs(t, s.DeleteStudent(context.Background(), "s1"), ErrStudentNotFound)
	assert.Len(t, p.saved, 1)
}

func TestTutorServiceAddLessonDefaults(t *testing.T) {
	s, _ := newTestTutorService(fixtureData())

	l, err := s.AddLesson(context.Background(), LessonInput{
		StudentID: "s2", Date: "2024-06-01", Time: "16:00", DurationMinutes: 60, Topic: "Üslü sayılar", Price: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, model.LessonStatusScheduled, l.Status)
	assert.Equal(t, model.PaymentStatusPending, l.PaymentStatus)
	assert.Nil(t, l.AIGeneratedPlan)
	assert.Len(t, s.Snapshot().Lessons, 4)
}

func TestTutorServiceAddLessonRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   LessonInput
		wantErr error
	}{
		{"unknown student", LessonInput{StudentID: "nope", Date: "2024-06-01", Time: "16:00", DurationMinutes: 60, Topic: "x", Price: 1}, ErrStudentNotFound},
		{"bad date", LessonInput{StudentID: "s1", Date: "01.06.2024", Time: "16:00", DurationMinutes: 60, Topic: "x", Price: 1}, ErrValidation},
		{"zero duration", LessonInput{StudentID: "s1", Date: "2024-06-01", Time: "16:00", DurationMinutes: 0, Topic: "x", Price: 1}, ErrValidation},
		{"negative price", LessonInput{StudentID: "s1", Date: "2024-06-01", Time: "16:00", DurationMinutes: 60, Topic: "x", Price: -5}, ErrValidation},
		{"empty topic", LessonInput{StudentID: "s1", Date: "2024-06-01", Time: "16:00", DurationMinutes: 60, Topic: " ", Price: 1}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := newTestTutorService(fixtureData())
			_, err := s.AddLesson(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, s.Snapshot().Lessons, 3)
			assert.Empty(t, p.saved)
		})
	}
}

func TestTutorServiceToggles(t *testing.T) {
	s, p := newTestTutorService(fixtureData())
	ctx := context.Background()

	l, err := s.ToggleStatus(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, model.LessonStatusCompleted, l.Status)

	l, err = s.TogglePayment(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, l.PaymentStatus)
	assert.Equal(t, model.LessonStatusCompleted, l.Status)

	_, err = s.ToggleStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	assert.Len(t, p.saved, 2)
	assert.Equal(t, model.PaymentStatusPaid, p.last().Lessons[0].PaymentStatus)
}

func TestTutorServiceAttachPlanPersists(t *testing.T) {
	s, p := newTestTutorService(fixtureData())

	_, err := s.AttachPlan(context.Background(), "l1", model.AILessonPlan{Objective: "Limit"})
	require.NoError(t, err)

	saved := p.last().Lessons[0].AIGeneratedPlan
	require.NotNil(t, saved)
	assert.Equal(t, "Limit", saved.Objective)
	assert.Equal(t, "Limit", s.Lesson("l1").AIGeneratedPlan.Objective)
}

func TestTutorServiceUpdateLesson(t *testing.T) {
	s, _ := newTestTutorService(fixtureData())
	ctx := context.Background()

	l := *s.Lesson("l2")
	l.Notes = "Ödev verildi"
	require.NoError(t, s.UpdateLesson(ctx, l))
	assert.Equal(t, "Ödev verildi", s.Lesson("l2").Notes)

	l.ID = "missing"
	assert.ErrorIs(t, s.UpdateLesson(ctx, l), ErrLessonNotFound)
}

func TestTutorServiceUpdateImportedLesson(t *testing.T) {
	data := fixtureData()
	// импорт из старой версии: время без ведущего нуля, длительность больше лимита
	data.Lessons[0].Time = "9:30"
	data.Lessons[0].DurationMinutes = 900
	s, p := newTestTutorService(data)
	ctx := context.Background()

	l := *s.Lesson("l1")
	l.Notes = "Tekrar yapıldı"
	require.NoError(t, s.UpdateLesson(ctx, l))
	assert.Equal(t, "Tekrar yapıldı", p.last().Lessons[0].Notes)
	assert.Equal(t, "9:30", p.last().Lessons[0].Time)

	// изменённые поля по-прежнему проверяются
	saves := len(p.saved)
	l.Topic = ""
	assert.ErrorIs(t, s.UpdateLesson(ctx, l), ErrValidation)
	l.Topic = "Limit"
	l.Price = -1
	assert.ErrorIs(t, s.UpdateLesson(ctx, l), ErrValidation)
	assert.Len(t, p.saved, saves)
	assert.Equal(t, "Tekrar yapıldı", s.Lesson("l1").Notes)
}

func TestChangedLessonFields(t *testing.T) {
	old := model.Lesson{ID: "l1", Topic: "Limit", Price: 500, Notes: "a"}

	next := old
	next.Notes = "b"
	assert.Empty(t, changedLessonFields(old, next))

	next.Topic = "Türev"
	next.Price = 600
	assert.Equal(t, []string{"Topic", "Price"}, changedLessonFields(old, next))
}

func TestTutorServiceTodos(t *testing.T) {
	s, _ := newTestTutorService(fixtureData())
	ctx := context.Background()

	_, err := s.AddTodo(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyTodo)

	todo, err := s.AddTodo(ctx, "Deneme sınavı hazırla")
	require.NoError(t, err)

	require.NoError(t, s.ToggleTodo(ctx, todo.ID))
	assert.True(t, s.Snapshot().Todos[1].Completed)

	require.NoError(t, s.DeleteTodo(ctx, "t1"))
	assert.Len(t, s.Snapshot().Todos, 1)
	assert.ErrorIs(t, s.DeleteTodo(ctx, "t1"), ErrTodoNotFound)
}

func TestTutorServiceReplace(t *testing.T) {
	s, p := newTestTutorService(fixtureData())

	require.NoError(t, s.Replace(context.Background(), model.AppData{Students: []model.Student{{ID: "n", Name: "Can", Level: model.LevelCollege}}}))

	snap := s.Snapshot()
	assert.Len(t, snap.Students, 1)
	assert.Empty(t, snap.Lessons)
	assert.NotNil(t, snap.Todos)
	assert.Equal(t, snap, p.last())
}

func TestTutorServiceLookups(t *testing.T) {
	s, _ := newTestTutorService(fixtureData())

	assert.Equal(t, "Ali", s.StudentName("s1"))
	assert.Equal(t, UnknownStudentName, s.StudentName("ghost"))
	assert.Nil(t, s.Lesson("ghost"))

	eligible := s.EligibleForPlanning()
	require.Len(t, eligible, 1)
	assert.Equal(t, "l1", eligible[0].ID)

	sorted := s.SortedLessons()
	assert.Equal(t, "l3", sorted[0].ID)
}

func TestTutorServiceSnapshotIsIsolated(t *testing.T) {
	s, _ := newTestTutorService(fixtureData())

	snap := s.Snapshot()
	snap.Students[0].Name = "Değişti"
	snap.Lessons = nil

	assert.Equal(t, "Ali", s.Snapshot().Students[0].Name)
	assert.Len(t, s.Snapshot().Lessons, 3)
}

func TestTutorServiceConcurrentMutations(t *testing.T) {
	s, p := newTestTutorService(model.AppData{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddStudent(ctx, StudentInput{Name: fmt.Sprintf("Öğrenci %d", i), Level: model.LevelMiddleSchool})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Students, 50)
	assert.Len(t, p.saved, 50)
	assert.Len(t, p.last().Students, 50)
}
