package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrNotConfigured ключ API не задан, запрос не отправлялся
	ErrNotConfigured = errors.New("ai api key is not configured")
	// ErrService ошибка провайдера или непригодный ответ
	ErrService = errors.New("ai service error")
	// ErrInvalidKey провайдер отклонил ключ
	ErrInvalidKey = errors.New("ai api key rejected")
	// ErrRateLimited провайдер ограничил частоту запросов
	ErrRateLimited = errors.New("ai rate limit exceeded")
)

const (
	DefaultQuizCount = 5
	maxTokens        = 2048
	planTemperature  = 0.7
	quizTemperature  = 0.8
)

// Generator создаёт учебные материалы
type Generator interface {
	GenerateLessonPlan(ctx context.Context, topic string, level model.StudentLevel, durationMinutes int) (*model.AILessonPlan, error)
	GenerateQuiz(ctx context.Context, topic string, level model.StudentLevel, questionCount int) (*model.GeneratedQuiz, error)
}

// Request запрос к языковой модели, не зависящий от провайдера
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema
	SchemaName   string
	Temperature  float32
	MaxTokens    int
}

// Completer отправляет один запрос и возвращает текст ответа
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Service реализует Generator поверх Completer. Без повторов и кэша.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// NewService создаёт сервис. completer == nil означает, что ключ не задан.
func NewService(completer Completer, logger *zap.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

// Configured проверяет, задан ли провайдер
func (s *Service) Configured() bool {
	return s.completer != nil
}

func (s *Service) GenerateLessonPlan(
	ctx context.Context,
	topic string,
	level model.StudentLevel,
	durationMinutes int,
) (*model.AILessonPlan, error) {
	if s.completer == nil {
		return nil, ErrNotConfigured
	}

	content, err := s.complete(ctx, "lesson_plan", Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   lessonPlanPrompt(topic, level, durationMinutes),
		Schema:       lessonPlanSchema,
		SchemaName:   "lesson_plan",
		Temperature:  planTemperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return nil, err
	}

	var plan model.AILessonPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		s.logger.Error("Failed to parse lesson plan", zap.Error(err), zap.Int("length", len(content)))
		return nil, fmt.Errorf("%w: parse lesson plan: %v", ErrService, err)
	}
	if plan.Objective == "" && len(plan.KeyConcepts) == 0 && len(plan.PracticeProblems) == 0 {
		return nil, fmt.Errorf("%w: lesson plan is empty", ErrService)
	}

	s.logger.Info("Lesson plan generated",
		zap.String("topic", topic),
		zap.String("level", string(level)),
		zap.Int("problems", len(plan.PracticeProblems)))

	return &plan, nil
}

func (s *Service) GenerateQuiz(
	ctx context.Context,
	topic string,
	level model.StudentLevel,
	questionCount int,
) (*model.GeneratedQuiz, error) {
	if s.completer == nil {
		return nil, ErrNotConfigured
	}
	if questionCount <= 0 {
		questionCount = DefaultQuizCount
	}

	content, err := s.complete(ctx, "quiz", Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   quizPrompt(topic, level, questionCount),
		Schema:       quizSchema,
		SchemaName:   "quiz",
		Temperature:  quizTemperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return nil, err
	}

	var quiz model.GeneratedQuiz
	if err := json.Unmarshal([]byte(content), &quiz); err != nil {
		s.logger.Error("Failed to parse quiz", zap.Error(err), zap.Int("length", len(content)))
		return nil, fmt.Errorf("%w: parse quiz: %v", ErrService, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: quiz has no questions", ErrService)
	}
	if quiz.Topic == "" {
		quiz.Topic = topic
	}
	if quiz.Level == "" {
		quiz.Level = string(level)
	}

	s.logger.Info("Quiz generated",
		zap.String("topic", topic),
		zap.String("level", string(level)),
		zap.Int("requested", questionCount),
		zap.Int("questions", len(quiz.Questions)))

	return &quiz, nil
}

func (s *Service) complete(ctx context.Context, kind string, req Request) (string, error) {
	content, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.logger.Error("AI request failed",
			zap.String("provider", s.completer.Name()),
			zap.String("kind", kind),
			zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrService, err)
	}

	content = stripCodeFence(content)
	if content == "" {
		return "", fmt.Errorf("%w: empty response", ErrService)
	}
	return content, nil
}

// stripCodeFence убирает ```json ... ``` вокруг ответа, если модель его добавила
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
