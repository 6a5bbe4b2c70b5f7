package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("What is 2+2?", nil)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "What is 2+2?", task.Ask)
	assert.Equal(t, TaskStatusCreated, task.Status)
	assert.Empty(t, task.Result)
}

func TestTask_Resolve(t *testing.T) {
	task := NewTask("q", nil)

	assert.NoError(t, task.Resolve("a"))
	assert.Equal(t, TaskStatusResolved, task.Status)
	assert.Equal(t, "a", task.Result)

	// terminal state is never revisited
	assert.Error(t, task.Resolve("again"))
	assert.Error(t, task.MarkNeedingDecomposition("again"))
}

func TestTask_MarkNeedingDecomposition(t *testing.T) {
	task := NewTask("q", nil)

	assert.NoError(t, task.MarkNeedingDecomposition("partial"))
	assert.Equal(t, TaskStatusNeedingDecomposition, task.Status)
	assert.Equal(t, "partial", task.Result)

	assert.Error(t, task.Resolve("a"))
	assert.Error(t, task.MarkNeedingDecomposition("partial2"))
}

func TestTask_Complete(t *testing.T) {
	t.Run("from created", func(t *testing.T) {
		task := NewTask("q", nil)
		assert.NoError(t, task.Complete("final"))
		assert.Equal(t, TaskStatusDone, task.Status)
		assert.Equal(t, "final", task.Result)
	})

	t.Run("from needing decomposition", func(t *testing.T) {
		task := NewTask("q", nil)
		assert.NoError(t, task.MarkNeedingDecomposition("partial"))
		assert.NoError(t, task.Complete("final"))
		assert.Equal(t, TaskStatusDone, task.Status)
		assert.Equal(t, "final", task.Result)
	})

	t.Run("from resolved", func(t *testing.T) {
		task := NewTask("q", nil)
		assert.NoError(t, task.Resolve("a"))
		assert.NoError(t, task.Complete("a"))
		assert.Equal(t, TaskStatusDone, task.Status)
	})

	t.Run("done is terminal", func(t *testing.T) {
		task := NewTask("q", nil)
		assert.NoError(t, task.Complete("final"))
		assert.Error(t, task.Complete("again"))
		assert.Equal(t, "final", task.Result)
	})
}

func TestTaskStatus_Terminal(t *testing.T) {
	assert.False(t, TaskStatusCreated.Terminal())
	assert.False(t, TaskStatusNeedingDecomposition.Terminal())
	assert.True(t, TaskStatusResolved.Terminal())
	assert.True(t, TaskStatusDone.Terminal())
}

func TestTaskStatus_String(t *testing.T) {
	assert.Equal(t, "created", TaskStatusCreated.String())
	assert.Equal(t, "resolved", TaskStatusResolved.String())
	assert.Equal(t, "needing-decomposition", TaskStatusNeedingDecomposition.String())
	assert.Equal(t, "done", TaskStatusDone.String())
	assert.Equal(t, "unknown", TaskStatus(42).String())
}
