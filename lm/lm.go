package lm

import (
	"context"
	"fmt"
)

// Role tags a message in a conversation history.
type Role string

const (
	// RoleSystem marks system instructions.
	RoleSystem Role = "system"
	// RoleUser marks user-authored content.
	RoleUser Role = "user"
	// RoleAssistant marks model-authored content.
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of an optional conversation history.
type Message struct {
	Role    Role
	Content string
}

// LM is the minimal language-model contract required by reasoners, planners
// and resources: a synchronous request/response over prompt text plus
// optional role-tagged history, returning text.
type LM interface {
	Generate(ctx context.Context, prompt string, history ...Message) (string, error)
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// MockLM is a lightweight in-memory LM useful for tests & examples.
type MockLM struct {
	info      Info
	responses map[string]string
	calls     []string
}

// NewMockLM constructs a MockLM.
func NewMockLM(name string) *MockLM {
	return &MockLM{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockLM) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Calls returns every prompt seen so far, in order.
func (m *MockLM) Calls() []string { return m.calls }

// Generate implements LM; returns the canned completion for the prompt or a
// deterministic fallback.
func (m *MockLM) Generate(ctx context.Context, prompt string, _ ...Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.calls = append(m.calls, prompt)
	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", prompt), nil
}

// Info returns metadata about the mock.
func (m *MockLM) Info() Info { return m.info }
