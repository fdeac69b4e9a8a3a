package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

// модели Groq с поддержкой response_format json_schema;
// остальным отправляется json_object и форма ответа из промпта
var groqSchemaModels = map[string]bool{
	"openai/gpt-oss-20b":                            true,
	"openai/gpt-oss-120b":                           true,
	"moonshotai/kimi-k2-instruct":                   true,
	"meta-llama/llama-4-maverick-17b-128e-instruct": true,
	"meta-llama/llama-4-scout-17b-16e-instruct":     true,
}

// chatClient часть openai.Client, нужная completer'у
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GroqCompleter chat completions через OpenAI-совместимый API Groq
type GroqCompleter struct {
	client chatClient
	model  string
}

func NewGroqCompleter(apiKey, model string) *GroqCompleter {
	if model == "" {
		model = DefaultGroqModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = GroqBaseURL

	return &GroqCompleter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *GroqCompleter) Name() string {
	return "groq"
}

func (c *GroqCompleter) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(req))
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *GroqCompleter) buildRequest(req Request) openai.ChatCompletionRequest {
	format := &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	}
	if req.Schema != nil && groqSchemaModels[c.model] {
		schema := req.Schema.toJSONSchema()
		format = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: &schema,
				Strict: true,
			},
		}
	}

	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		ResponseFormat: format,
	}
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrInvalidKey, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrInvalidKey, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	return err
}
