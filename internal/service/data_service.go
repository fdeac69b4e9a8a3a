package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey ключ под которым хранится весь агрегат
const StorageKey = "mathtutor_data_tr_v2"

// Persistence загрузка и сохранение агрегата целиком
type Persistence interface {
	Load(ctx context.Context) model.AppData
	Save(ctx context.Context, data model.AppData)
}

type DataService struct {
	store  repository.BlobStore
	logger *zap.Logger
	now    func() time.Time
}

func NewDataService(store repository.BlobStore, logger *zap.Logger) *DataService {
	return &DataService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// storedData различает отсутствующие и пустые списки
type storedData struct {
	Students []model.Student   `json:"students"`
	Lessons  []model.Lesson    `json:"lessons"`
	Todos    *[]model.TodoItem `json:"todos"`
}

// Load читает сохранённый агрегат. Если данных нет или они повреждены,
// возвращает стартовый набор. Старые данные без todos получают пустой список.
func (s *DataService) Load(ctx context.Context) model.AppData {
	raw, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrBlobNotFound) {
			s.logger.Error("Failed to read stored data", zap.Error(err))
		} else {
			s.logger.Info("No stored data, using seed dataset")
		}
		return s.Seed(s.now())
	}

	data, err := decodeStored(raw)
	if err != nil {
		s.logger.Error("Failed to parse stored data, using seed dataset", zap.Error(err))
		return s.Seed(s.now())
	}

	s.logger.Info("Data loaded",
		zap.Int("students", len(data.Students)),
		zap.Int("lessons", len(data.Lessons)),
		zap.Int("todos", len(data.Todos)))

	return data
}

func decodeStored(raw []byte) (model.AppData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.AppData{}, errors.New("stored value is not a JSON object")
	}

	var stored storedData
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return model.AppData{}, err
	}

	data := model.AppData{
		Students: stored.Students,
		Lessons:  stored.Lessons,
	}
	if stored.Todos != nil {
		data.Todos = *stored.Todos
	}
	data.Normalize()
	return data, nil
}

// Save сериализует и записывает агрегат целиком. Ошибка записи только логируется:
// состояние в памяти остаётся основным до конца сессии.
func (s *DataService) Save(ctx context.Context, data model.AppData) {
	data.Normalize()

	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Failed to encode data", zap.Error(err))
		return
	}

	if err := s.store.Put(ctx, StorageKey, raw); err != nil {
		s.logger.Error("Failed to save data", zap.Error(err), zap.Int("bytes", len(raw)))
		return
	}

	s.logger.Debug("Data saved", zap.Int("bytes", len(raw)))
}

// Seed возвращает стартовый набор данных: два ученика, два занятия, две заметки
func (s *DataService) Seed(now time.Time) model.AppData {
	return model.AppData{
		Students: []model.Student{
			{ID: "1", Name: "Ayşe Yılmaz", Level: model.LevelHighSchool, Email: "ayse@ornek.com"},
			{ID: "2", Name: "Mehmet Demir", Level: model.LevelMiddleSchool, Email: "mehmet@ornek.com"},
		},
		Lessons: []model.Lesson{
			{
				ID:              "101",
				StudentID:       "1",
				Date:            now.Format(model.DateLayout),
				Time:            "16:00",
				DurationMinutes: 60,
				Topic:           "Türev: Temel Kurallar",
				Price:           500,
				Status:          model.LessonStatusScheduled,
				PaymentStatus:   model.PaymentStatusPending,
			},
			{
				ID:              "102",
				StudentID:       "2",
				Date:            now.AddDate(0, 0, -1).Format(model.DateLayout),
				Time:            "15:00",
				DurationMinutes: 45,
				Topic:           "Cebir: Lineer Denklemler",
				Price:           400,
				Status:          model.LessonStatusCompleted,
				PaymentStatus:   model.PaymentStatusPaid,
			},
		},
		Todos: []model.TodoItem{
			{ID: "1", Text: "Kırtasiyeden yeni test kitaplarını al", Completed: false},
			{ID: "2", Text: "Ayşe'nin velisini ara", Completed: true},
		},
	}
}

// GenerateID создаёт идентификатор из текущего времени и случайной части.
// Уникальность среди существующих записей не проверяется.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
