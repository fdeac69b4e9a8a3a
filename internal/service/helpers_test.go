package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
)

// memStore хранилище в памяти для тестов
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    int
	failPut bool
	failGet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("storage unavailable")
	}
	v, ok := m.data[key]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("quota exceeded")
	}
	m.data[key] = append([]byte(nil), data...)
	m.puts++
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// memPersistence фиксирует последнее сохранённое значение
type memPersistence struct {
	initial model.AppData
	saved   []model.AppData
}

func (p *memPersistence) Load(context.Context) model.AppData {
	return p.initial.Clone()
}

func (p *memPersistence) Save(_ context.Context, data model.AppData) {
	p.saved = append(p.saved, data.Clone())
}

func (p *memPersistence) last() model.AppData {
	return p.saved[len(p.saved)-1]
}

func fixtureData() model.AppData {
	return model.AppData{
		Students: []model.Student{
			{ID: "s1", Name: "Ali", Level: model.LevelHighSchool},
			{ID: "s2", Name: "Zeynep", Level: model.LevelMiddleSchool},
		},
		Lessons: []model.Lesson{
			{ID: "l1", StudentID: "s1", Date: "2024-05-01", Time: "10:00", DurationMinutes: 60, Topic: "Limit", Price: 500,
				Status: model.LessonStatusScheduled, PaymentStatus: model.PaymentStatusPending},
			{ID: "l2", StudentID: "s2", Date: "2024-05-02", Time: "09:00", DurationMinutes: 45, Topic: "Kesirler", Price: 400,
				Status: model.LessonStatusCompleted, PaymentStatus: model.PaymentStatusPending},
			{ID: "l3", StudentID: "s1", Date: "2024-05-02", Time: "14:00", DurationMinutes: 60, Topic: "Türev", Price: 500,
				Status: model.LessonStatusCompleted, PaymentStatus: model.PaymentStatusPaid},
		},
		Todos: []model.TodoItem{
			{ID: "t1", Text: "Test kitabı al"},
		},
	}
}
