package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"go.uber.org/zap"
)

// StudentInput данные для создания ученика
type StudentInput struct {
	Name  string
	Level model.StudentLevel
	Email string
	Phone string
	Notes string
}

// LessonInput данные для планирования занятия
type LessonInput struct {
	StudentID       string
	Date            string
	Time            string
	DurationMinutes int
	Topic           string
	Price           float64
	Notes           string
}

// TutorService хранит агрегат текущей сессии и сохраняет его после каждой мутации.
// Обработчики бота работают в разных горутинах, поэтому мутации сериализуются.
type TutorService struct {
	mu          sync.RWMutex
	data        model.AppData
	persistence Persistence
	logger      *zap.Logger
	newID       func() string
}

// NewTutorService загружает агрегат один раз при старте
func NewTutorService(ctx context.Context, persistence Persistence, logger *zap.Logger) *TutorService {
	data := persistence.Load(ctx)
	data.Normalize()

	return &TutorService{
		data:        data,
		persistence: persistence,
		logger:      logger,
		newID:       GenerateID,
	}
}

// Snapshot возвращает копию текущего агрегата
func (s *TutorService) Snapshot() model.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// apply применяет мутацию, заменяет агрегат и сохраняет его целиком
func (s *TutorService) apply(ctx context.Context, op string, fn func(model.AppData) (model.AppData, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.data)
	if err != nil {
		return err
	}

	s.data = next
	s.persistence.Save(ctx, next)

	s.logger.Debug("State updated",
		zap.String("operation", op),
		zap.Int("students", len(next.Students)),
		zap.Int("lessons", len(next.Lessons)))

	return nil
}

// AddStudent создаёт ученика с новым ID
func (s *TutorService) AddStudent(ctx context.Context, in StudentInput) (*model.Student, error) {
	student := model.Student{
		ID:    s.newID(),
		Name:  strings.TrimSpace(in.Name),
		Level: in.Level,
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Notes: in.Notes,
	}
	if err := model.Validate(student); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	err := s.apply(ctx, "add_student", func(d model.AppData) (model.AppData, error) {
		return AddStudent(d, student), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Student added", zap.String("student_id", student.ID), zap.String("level", string(student.Level)))
	return &student, nil
}

// DeleteStudent удаляет ученика вместе со всеми его занятиями
func (s *TutorService) DeleteStudent(ctx context.Context, studentID string) error {
	var removedLessons int
	err := s.apply(ctx, "delete_student", func(d model.AppData) (model.AppData, error) {
		if findStudent(d, studentID) == nil {
			return d, ErrStudentNotFound
		}
		next := DeleteStudent(d, studentID)
		removedLessons = len(d.Lessons) - len(next.Lessons)
		return next, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Student deleted",
		zap.String("student_id", studentID),
		zap.Int("lessons_removed", removedLessons))
	return nil
}

// AddLesson планирует занятие: статус Planlandı, оплата Bekliyor
func (s *TutorService) AddLesson(ctx context.Context, in LessonInput) (*model.Lesson, error) {
	lesson := model.Lesson{
		ID:              s.newID(),
		StudentID:       in.StudentID,
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: in.DurationMinutes,
		Topic:           strings.TrimSpace(in.Topic),
		Price:           in.Price,
		Status:          model.LessonStatusScheduled,
		PaymentStatus:   model.PaymentStatusPending,
		Notes:           in.Notes,
	}
	if err := model.Validate(lesson); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	err := s.apply(ctx, "add_lesson", func(d model.AppData) (model.AppData, error) {
		if findStudent(d, lesson.StudentID) == nil {
			return d, ErrStudentNotFound
		}
		return AddLesson(d, lesson), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lesson scheduled",
		zap.String("lesson_id", lesson.ID),
		zap.String("student_id", lesson.StudentID),
		zap.String("date", lesson.Date))
	return &lesson, nil
}

// UpdateLesson заменяет занятие целиком по ID.
// Проверяются только изменённые поля: импортированное занятие со старыми
// значениями можно править, не исправляя остальное.
func (s *TutorService) UpdateLesson(ctx context.Context, lesson model.Lesson) error {
	return s.apply(ctx, "update_lesson", func(d model.AppData) (model.AppData, error) {
		current := findLesson(d, lesson.ID)
		if current == nil {
			return d, ErrLessonNotFound
		}
		if err := model.ValidateFields(lesson, changedLessonFields(*current, lesson)...); err != nil {
			return d, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return UpdateLesson(d, lesson), nil
	})
}

// changedLessonFields имена полей с validate-тегами, которые отличаются
func changedLessonFields(old, next model.Lesson) []string {
	var fields []string
	add := func(changed bool, name string) {
		if changed {
			fields = append(fields, name)
		}
	}
	add(old.StudentID != next.StudentID, "StudentID")
	add(old.Date != next.Date, "Date")
	add(old.Time != next.Time, "Time")
	add(old.DurationMinutes != next.DurationMinutes, "DurationMinutes")
	add(old.Topic != next.Topic, "Topic")
	add(old.Price != next.Price, "Price")
	add(old.Status != next.Status, "Status")
	add(old.PaymentStatus != next.PaymentStatus, "PaymentStatus")
	return fields
}

// ToggleStatus переключает статус занятия и возвращает обновлённое занятие
func (s *TutorService) ToggleStatus(ctx context.Context, lessonID string) (*model.Lesson, error) {
	return s.modifyLesson(ctx, "toggle_status", lessonID, ToggleLessonStatus)
}

// TogglePayment переключает оплату занятия и возвращает обновлённое занятие
func (s *TutorService) TogglePayment(ctx context.Context, lessonID string) (*model.Lesson, error) {
	return s.modifyLesson(ctx, "toggle_payment", lessonID, ToggleLessonPayment)
}

// AttachPlan сохраняет AI-план в занятие
func (s *TutorService) AttachPlan(ctx context.Context, lessonID string, plan model.AILessonPlan) (*model.Lesson, error) {
	return s.modifyLesson(ctx, "attach_plan", lessonID, func(d model.AppData, id string) (model.AppData, bool) {
		return AttachPlan(d, id, plan)
	})
}

func (s *TutorService) modifyLesson(
	ctx context.Context,
	op string,
	lessonID string,
	fn func(model.AppData, string) (model.AppData, bool),
) (*model.Lesson, error) {
	var updated model.Lesson
	err := s.apply(ctx, op, func(d model.AppData) (model.AppData, error) {
		next, ok := fn(d, lessonID)
		if !ok {
			return d, ErrLessonNotFound
		}
		updated = *findLesson(next, lessonID)
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lesson updated",
		zap.String("operation", op),
		zap.String("lesson_id", lessonID),
		zap.String("status", string(updated.Status)),
		zap.String("payment_status", string(updated.PaymentStatus)))
	return &updated, nil
}

// AddTodo добавляет заметку на панель
func (s *TutorService) AddTodo(ctx context.Context, text string) (*model.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTodo
	}

	todo := model.TodoItem{ID: s.newID(), Text: text}
	err := s.apply(ctx, "add_todo", func(d model.AppData) (model.AppData, error) {
		return AddTodo(d, todo), nil
	})
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// ToggleTodo отмечает заметку выполненной или снимает отметку
func (s *TutorService) ToggleTodo(ctx context.Context, todoID string) error {
	return s.apply(ctx, "toggle_todo", func(d model.AppData) (model.AppData, error) {
		next, ok := ToggleTodo(d, todoID)
		if !ok {
			return d, ErrTodoNotFound
		}
		return next, nil
	})
}

// DeleteTodo удаляет заметку
func (s *TutorService) DeleteTodo(ctx context.Context, todoID string) error {
	return s.apply(ctx, "delete_todo", func(d model.AppData) (model.AppData, error) {
		next, ok := DeleteTodo(d, todoID)
		if !ok {
			return d, ErrTodoNotFound
		}
		return next, nil
	})
}

// Replace заменяет весь агрегат (восстановление из резервной копии)
func (s *TutorService) Replace(ctx context.Context, data model.AppData) error {
	err := s.apply(ctx, "replace", func(d model.AppData) (model.AppData, error) {
		return ReplaceAll(d, data), nil
	})
	if err != nil {
		return err
	}

	s.logger.Warn("Data replaced",
		zap.Int("students", len(data.Students)),
		zap.Int("lessons", len(data.Lessons)),
		zap.Int("todos", len(data.Todos)))
	return nil
}

// Student возвращает ученика по ID или nil
func (s *TutorService) Student(studentID string) *model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st := findStudent(s.data, studentID); st != nil {
		cp := *st
		return &cp
	}
	return nil
}

// Lesson возвращает занятие по ID или nil
func (s *TutorService) Lesson(lessonID string) *model.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l := findLesson(s.data, lessonID); l != nil {
		cp := *l
		return &cp
	}
	return nil
}

// SortedLessons возвращает занятия, новые сверху
func (s *TutorService) SortedLessons() []model.Lesson {
	return SortLessonsNewestFirst(s.Snapshot().Lessons)
}

// EligibleForPlanning возвращает запланированные занятия (для AI-планировщика)
func (s *TutorService) EligibleForPlanning() []model.Lesson {
	var out []model.Lesson
	for _, l := range s.SortedLessons() {
		if l.Status == model.LessonStatusScheduled {
			out = append(out, l)
		}
	}
	return out
}

// StudentName возвращает имя ученика или заглушку для висячей ссылки
func (s *TutorService) StudentName(studentID string) string {
	if st := s.Student(studentID); st != nil {
		return st.Name
	}
	return UnknownStudentName
}

// UnknownStudentName отображается для занятий без существующего ученика
const UnknownStudentName = "Bilinmeyen Öğrenci"

func findStudent(d model.AppData, id string) *model.Student {
	for i := range d.Students {
		if d.Students[i].ID == id {
			return &d.Students[i]
		}
	}
	return nil
}

func findLesson(d model.AppData, id string) *model.Lesson {
	for i := range d.Lessons {
		if d.Lessons[i].ID == id {
			return &d.Lessons[i]
		}
	}
	return nil
}
