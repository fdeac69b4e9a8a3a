package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDataService(store *memStore, now time.Time) *DataService {
	s := NewDataService(store, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestDataServiceLoadSeedsWhenEmpty(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s := newTestDataService(newMemStore(), now)

	data := s.Load(context.Background())

	require.Len(t, data.Students, 2)
	require.Len(t, data.Lessons, 2)
	require.Len(t, data.Todos, 2)

	assert.Equal(t, "Ayşe Yılmaz", data.Students[0].Name)
	assert.Equal(t, model.LevelHighSchool, data.Students[0].Level)
	assert.Equal(t, "2024-05-10", data.Lessons[0].Date)
	assert.Equal(t, "2024-05-09", data.Lessons[1].Date)
	assert.Equal(t, model.LessonStatusCompleted, data.Lessons[1].Status)
	assert.Equal(t, model.PaymentStatusPaid, data.Lessons[1].PaymentStatus)
	assert.True(t, data.Todos[1].Completed)
}

func TestDataServiceSeedIsValid(t *testing.T) {
	seed := NewDataService(newMemStore(), zap.NewNop()).Seed(time.Now())
	for _, st := range seed.Students {
		assert.NoError(t, model.Validate(st))
	}
	for _, l := range seed.Lessons {
		assert.NoError(t, model.Validate(l))
	}
}

func TestDataServiceLegacyDataWithoutTodos(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = []byte(`{"students":[{"id":"s1","name":"Ali","level":"Lise"}],"lessons":[]}`)

	data := newTestDataService(store, time.Now()).Load(context.Background())

	require.Len(t, data.Students, 1)
	assert.Equal(t, "Ali", data.Students[0].Name)
	assert.NotNil(t, data.Todos)
	assert.Empty(t, data.Todos)
	assert.NotNil(t, data.Lessons)
}

func TestDataServiceCorruptedDataFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json at all"},
		{"array", `[1,2,3]`},
		{"truncated", `{"students":[`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.data[StorageKey] = []byte(tt.raw)

			data := newTestDataService(store, time.Now()).Load(context.Background())
			require.Len(t, data.Students, 2)
			assert.Equal(t, "1", data.Students[0].ID)
		})
	}
}

func TestDataServiceUnreadableStoreFallsBackToSeed(t *testing.T) {
	store := newMemStore()
	store.failGet = true

	data := newTestDataService(store, time.Now()).Load(context.Background())
	assert.Len(t, data.Students, 2)
}

func TestDataServiceSaveLoadRoundTrip(t *testing.T) {
	store := newMemStore()
	s := newTestDataService(store, time.Now())
	ctx := context.Background()

	want := fixtureData()
	plan := &model.AILessonPlan{
		Objective:        "Limit kavramını öğrenmek",
		KeyConcepts:      []string{"Sağdan limit", "Soldan limit"},
		PracticeProblems: []model.PracticeProblem{{Problem: "lim x->2 (x+1)", Solution: "3"}},
		HomeworkIdeas:    []string{"Kitap s. 42"},
	}
	want.Lessons[0].AIGeneratedPlan = plan

	s.Save(ctx, want)
	got := s.Load(ctx)

	assert.Equal(t, want, got)
}

func TestDataServiceSaveFailureDoesNotPanic(t *testing.T) {
	store := newMemStore()
	store.failPut = true
	s := newTestDataService(store, time.Now())

	assert.NotPanics(t, func() {
		s.Save(context.Background(), fixtureData())
	})
	assert.Empty(t, store.data)
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
