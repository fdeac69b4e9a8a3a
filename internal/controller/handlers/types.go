package handlers

import (
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и сообщений
type Handlers struct {
	deps         *callbacktypes.Handler
	stateManager *state.Manager
	ownerID      int64
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд.
// ownerID != 0 ограничивает бота одним пользователем Telegram.
func NewHandlers(
	deps *callbacktypes.Handler,
	stateManager *state.Manager,
	ownerID int64,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		deps:         deps,
		stateManager: stateManager,
		ownerID:      ownerID,
		logger:       logger,
	}
}
