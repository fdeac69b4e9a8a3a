package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// ProviderConfig выбор провайдера и ключ
type ProviderConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// NewGenerator собирает Service с выбранным провайдером.
// Пустой ключ не ошибка: сервис будет отвечать ErrNotConfigured.
func NewGenerator(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		logger.Warn("AI API key is not set, generation disabled")
		return NewService(nil, logger), nil
	}

	var completer Completer
	switch cfg.Provider {
	case ProviderGroq, "":
		completer = NewGroqCompleter(cfg.APIKey, cfg.Model)
	case ProviderGemini:
		c, err := NewGeminiCompleter(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		completer = c
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}

	logger.Info("AI provider configured", zap.String("provider", completer.Name()))
	return NewService(completer, logger), nil
}
