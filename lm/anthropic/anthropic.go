// Package anthropic provides an lm.LM wrapper for the Anthropic Claude API.
package anthropic

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/deepsolve/lm"
	"github.com/hupe1980/deepsolve/logging"
)

// Options configures the Anthropic adapter (model id, temperature, max
// tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
	// Logger receives call latency diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// LM wraps the Anthropic Messages API behind the generic lm.LM interface.
type LM struct {
	client *anthropic.Client
	opts   Options
	slog   *logging.SolveLogger
}

// New creates a new Anthropic LM using the official client.
func New(optFns ...func(o *Options)) *LM {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &LM{
		client: &client,
		opts:   opts,
		slog:   logging.NewSolveLogger(opts.Logger).WithComponent("lm.anthropic"),
	}
}

// NewFromClient creates a new Anthropic LM from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *LM {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LM{
		client: client,
		opts:   opts,
		slog:   logging.NewSolveLogger(opts.Logger).WithComponent("lm.anthropic"),
	}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// Generate implements lm.LM with a blocking Messages API call.
func (m *LM) Generate(ctx context.Context, prompt string, history ...lm.Message) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    buildMessages(prompt, history),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
	}
	if systemBlocks := extractSystemBlocks(history); len(systemBlocks) > 0 {
		params.System = systemBlocks
	}

	start := time.Now()
	resp, err := m.client.Messages.New(ctx, params)
	m.slog.LogLMCall(string(m.opts.Model), time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	return text, nil
}

// Info returns metadata about the model implementation.
func (m *LM) Info() lm.Info { return lm.Info{Name: string(m.opts.Model), Provider: "anthropic"} }

// buildMessages converts the history plus final prompt into Anthropic
// message params. System messages are handled separately.
func buildMessages(prompt string, history []lm.Message) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, msg := range history {
		switch msg.Role {
		case lm.RoleSystem:
			continue
		case lm.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))
	return messages
}

// extractSystemBlocks collects system messages into text block params.
func extractSystemBlocks(history []lm.Message) []anthropic.TextBlockParam {
	var blocks []anthropic.TextBlockParam
	for _, msg := range history {
		if msg.Role == lm.RoleSystem && msg.Content != "" {
			blocks = append(blocks, anthropic.TextBlockParam{Text: msg.Content})
		}
	}
	return blocks
}
