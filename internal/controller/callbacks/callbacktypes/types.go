package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/ai"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	GetString(telegramID int64, key string) string
	DeleteData(telegramID int64, key string)
	GetAllData(telegramID int64) map[string]interface{}
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	Tutor        *service.TutorService
	Dashboard    *service.DashboardService
	Transfer     *service.TransferService
	Auth         *service.AuthService
	Generator    ai.Generator
	StateManager StateManager
	Logger       *zap.Logger

	// Now текущее время; подменяется в тестах
	Now func() time.Time
}
