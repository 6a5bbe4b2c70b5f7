package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlogLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerTo(&buf, LogLevelInfo, "text", false)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestSolveLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLoggerTo(&buf, LogLevelDebug, "text", false)

	logger := NewSolveLogger(base).WithComponent("planner").WithContext("task", "t-1")
	logger.Info("plan produced")

	out := buf.String()
	assert.Contains(t, out, "component=planner")
	assert.Contains(t, out, "task=t-1")
}

func TestSolveLogger_WithContextDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLoggerTo(&buf, LogLevelDebug, "text", false)

	parent := NewSolveLogger(base).WithComponent("agent")
	_ = parent.WithContext("task", "t-1")
	parent.Info("no task attached")

	out := buf.String()
	assert.Contains(t, out, "component=agent")
	assert.NotContains(t, out, "task=t-1")
}

func TestSolveLogger_LogLMCall(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLoggerTo(&buf, LogLevelDebug, "text", false)
	logger := NewSolveLogger(base)

	logger.LogLMCall("gpt-4o-mini", 120*time.Millisecond, nil)
	require.Contains(t, buf.String(), "LM call completed")

	buf.Reset()
	logger.LogLMCall("gpt-4o-mini", 120*time.Millisecond, errors.New("rate limited"))
	out := buf.String()
	assert.Contains(t, out, "LM call failed")
	assert.Contains(t, out, "rate limited")
}

func TestSolveLogger_NilBaseUsesNoOp(t *testing.T) {
	logger := NewSolveLogger(nil)

	// must not panic
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	logger.LogDecomposition("q", 2, 3)
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
}
