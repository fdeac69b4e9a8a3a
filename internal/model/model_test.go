package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonStatusNextCycle(t *testing.T) {
	tests := []struct {
		from LessonStatus
		want LessonStatus
	}{
		{LessonStatusScheduled, LessonStatusCompleted},
		{LessonStatusCompleted, LessonStatusCancelled},
		{LessonStatusCancelled, LessonStatusScheduled},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}

	for _, start := range []LessonStatus{LessonStatusScheduled, LessonStatusCompleted, LessonStatusCancelled} {
		assert.Equal(t, start, start.Next().Next().Next())
	}
}

func TestPaymentStatusToggle(t *testing.T) {
	assert.Equal(t, PaymentStatusPaid, PaymentStatusPending.Toggle())
	assert.Equal(t, PaymentStatusPending, PaymentStatusPaid.Toggle())
	assert.Equal(t, PaymentStatusPending, PaymentStatusPending.Toggle().Toggle())
}

func TestStudentLevelValid(t *testing.T) {
	for _, level := range StudentLevels() {
		assert.True(t, level.Valid(), level)
	}
	assert.False(t, StudentLevel("Lisans").Valid())
	assert.False(t, StudentLevel("").Valid())
}

func TestValidateStudent(t *testing.T) {
	tests := []struct {
		name    string
		student Student
		wantErr bool
	}{
		{name: "valid", student: Student{ID: "1", Name: "Ali", Level: LevelHighSchool}},
		{name: "valid with email", student: Student{ID: "1", Name: "Ali", Level: LevelCollege, Email: "ali@ornek.com"}},
		{name: "no name", student: Student{ID: "1", Level: LevelHighSchool}, wantErr: true},
		{name: "bad level", student: Student{ID: "1", Name: "Ali", Level: "x"}, wantErr: true},
		{name: "bad email", student: Student{ID: "1", Name: "Ali", Level: LevelHighSchool, Email: "nope"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.student)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLesson(t *testing.T) {
	valid := Lesson{
		ID:              "l1",
		StudentID:       "s1",
		Date:            "2024-05-01",
		Time:            "16:00",
		DurationMinutes: 60,
		Topic:           "Türev",
		Price:           500,
		Status:          LessonStatusScheduled,
		PaymentStatus:   PaymentStatusPending,
	}
	require.NoError(t, Validate(valid))

	bad := valid
	bad.Date = "01.05.2024"
	assert.Error(t, Validate(bad))

	bad = valid
	bad.DurationMinutes = 0
	assert.Error(t, Validate(bad))

	bad = valid
	bad.Price = -1
	assert.Error(t, Validate(bad))

	bad = valid
	bad.Time = "25:00"
	assert.Error(t, Validate(bad))
}

func TestValidateFields(t *testing.T) {
	legacy := Lesson{ID: "l1", StudentID: "s1", Date: "2024-05-01", Time: "9:30", DurationMinutes: 900, Topic: "Türev"}
	require.Error(t, Validate(legacy))

	assert.NoError(t, ValidateFields(legacy))
	assert.NoError(t, ValidateFields(legacy, "Topic", "Price"))

	err := ValidateFields(legacy, "Time")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time")
}

func TestLessonStartsAt(t *testing.T) {
	l := Lesson{Date: "2024-05-01", Time: "16:30"}
	got := l.StartsAt()
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 16, got.Hour())
	assert.Equal(t, 30, got.Minute())

	noTime := Lesson{Date: "2024-05-01", Time: "?"}
	assert.Equal(t, 1, noTime.StartsAt().Day())
}

func TestAppDataCloneIsDeep(t *testing.T) {
	orig := AppData{
		Students: []Student{{ID: "1", Name: "Ayşe", Level: LevelHighSchool}},
		Lessons: []Lesson{{
			ID:              "101",
			StudentID:       "1",
			AIGeneratedPlan: &AILessonPlan{Objective: "o", KeyConcepts: []string{"a"}},
		}},
		Todos: []TodoItem{{ID: "1", Text: "t"}},
	}

	c := orig.Clone()
	c.Students[0].Name = "x"
	c.Lessons[0].AIGeneratedPlan.KeyConcepts[0] = "b"
	c.Todos[0].Completed = true

	assert.Equal(t, "Ayşe", orig.Students[0].Name)
	assert.Equal(t, "a", orig.Lessons[0].AIGeneratedPlan.KeyConcepts[0])
	assert.False(t, orig.Todos[0].Completed)
}

func TestGeneratedQuizText(t *testing.T) {
	q := GeneratedQuiz{
		Topic: "Türev",
		Level: "Lise",
		Questions: []QuizQuestion{
			{Question: "x^2 türevi?", Answer: "2x"},
			{Question: "sin x türevi?", Answer: "cos x"},
		},
	}

	text := q.Text()
	assert.Contains(t, text, "KONU: Türev (Lise)")
	assert.Contains(t, text, "1. x^2 türevi?")
	assert.Contains(t, text, "CEVAP ANAHTARI:\n1. 2x\n2. cos x\n")
}
