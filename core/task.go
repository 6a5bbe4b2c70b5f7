package core

import (
	"fmt"

	"github.com/google/uuid"
)

// TaskStatus models the lifecycle of a Task.
//
// Legal transitions:
//
//	Created -> Resolved               (reasoner answered directly, confident)
//	Created -> NeedingDecomposition   (reasoner wants the task broken down)
//	NeedingDecomposition -> Done      (decomposition results synthesized)
//	Resolved -> Done                  (task consumed by a plan execution)
//	Created -> Done                   (sub-task completed by the recursion driver)
//
// Resolved and Done are terminal; a terminal status is never revisited.
type TaskStatus int

const (
	// TaskStatusCreated is the initial status of every task.
	TaskStatusCreated TaskStatus = iota
	// TaskStatusResolved indicates a confident direct answer from a reasoner.
	TaskStatusResolved
	// TaskStatusNeedingDecomposition indicates the reasoner judged the task
	// too hard to answer directly; a partial result may be present.
	TaskStatusNeedingDecomposition
	// TaskStatusDone indicates the task's final result has been produced,
	// either directly or by synthesizing decomposition results.
	TaskStatusDone
)

// String returns the human-readable status name.
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusCreated:
		return "created"
	case TaskStatusResolved:
		return "resolved"
	case TaskStatusNeedingDecomposition:
		return "needing-decomposition"
	case TaskStatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status permits reading the task's result.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusResolved || s == TaskStatusDone
}

// NewID generates a unique identifier for tasks.
func NewID() string { return uuid.NewString() }

// Task is one unit of problem-solving work: a question, the resources
// available to answer it, and the eventual result. The resource slice is an
// immutable snapshot for the lifetime of the solve attempt; only the status
// and result fields change, and only through the transition methods below.
type Task struct {
	ID        string
	Ask       string
	Resources []Resource
	Status    TaskStatus
	Result    string
}

// NewTask creates a Task in the Created status.
func NewTask(ask string, resources []Resource) *Task {
	return &Task{
		ID:        NewID(),
		Ask:       ask,
		Resources: resources,
		Status:    TaskStatusCreated,
	}
}

// Resolve records a confident direct answer. Only legal from Created.
func (t *Task) Resolve(result string) error {
	if t.Status != TaskStatusCreated {
		return fmt.Errorf("task %s: cannot resolve from status %s", t.ID, t.Status)
	}
	t.Status = TaskStatusResolved
	t.Result = result
	return nil
}

// MarkNeedingDecomposition records an unconfident attempt whose partial
// result may still inform later synthesis. Only legal from Created.
func (t *Task) MarkNeedingDecomposition(partial string) error {
	if t.Status != TaskStatusCreated {
		return fmt.Errorf("task %s: cannot mark needing decomposition from status %s", t.ID, t.Status)
	}
	t.Status = TaskStatusNeedingDecomposition
	t.Result = partial
	return nil
}

// Complete records the final result. Legal from any non-Done status: the
// recursion driver completes sub-tasks whose reasoning happened inside the
// recursive call, so a plan's own sub-task may go straight from Created to
// Done.
func (t *Task) Complete(result string) error {
	if t.Status == TaskStatusDone {
		return fmt.Errorf("task %s: already done", t.ID)
	}
	t.Status = TaskStatusDone
	t.Result = result
	return nil
}
