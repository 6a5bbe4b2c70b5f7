// Package openai provides an implementation of lm.LM using the OpenAI Chat
// Completions API. It adapts DeepSolve's prompt-plus-history shape into the
// SDK's message format and extracts the completion text.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"

	"github.com/hupe1980/deepsolve/lm"
	"github.com/hupe1980/deepsolve/logging"
)

// Options configure the OpenAI adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	// Logger receives call latency diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// LM wraps the OpenAI Chat Completions API behind the generic lm.LM interface.
type LM struct {
	client *openai.Client
	opts   Options
	slog   *logging.SolveLogger
}

// New creates a new OpenAI LM using the official client.
func New(optFns ...func(o *Options)) *LM {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a new OpenAI LM from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *LM {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LM{
		client: client,
		opts:   opts,
		slog:   logging.NewSolveLogger(opts.Logger).WithComponent("lm.openai"),
	}
}

// Generate implements lm.LM with a blocking chat completion call.
func (m *LM) Generate(ctx context.Context, prompt string, history ...lm.Message) (string, error) {
	messages := buildMessages(prompt, history)

	start := time.Now()
	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               m.opts.Model,
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
	})
	m.slog.LogLMCall(m.opts.Model, time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info returns metadata about the model implementation.
func (m *LM) Info() lm.Info { return lm.Info{Name: m.opts.Model, Provider: "openai"} }

// buildMessages converts the history plus final prompt into OpenAI chat messages.
func buildMessages(prompt string, history []lm.Message) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	for _, msg := range history {
		switch msg.Role {
		case lm.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case lm.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			// Treat unknown roles as user
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(prompt))
	return messages
}
