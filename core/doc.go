// Package core provides the foundational domain types and capability
// contracts used by DeepSolve. It defines the core abstractions for:
//
//   - Tasks (a question plus the resources available to answer it)
//   - Plans (one-level-deep decompositions of a task into sub-tasks)
//   - TaskStatus (the lifecycle state machine governing a task)
//   - Planner / Reasoner (pluggable problem-decomposition and
//     direct-reasoning capabilities)
//   - Resources (opaque informational sources described by an overview)
//   - Knowledge (an accumulated set of free-text facts)
//
// The package intentionally keeps implementation concerns (language-model
// clients, concrete planners and reasoners, orchestration) out of scope,
// exposing small interfaces to enable custom backends and extensions.
package core
