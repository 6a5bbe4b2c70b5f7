// Package lm defines the provider-agnostic language-model contract used by
// DeepSolve's reasoners, planners and resources.
//
// Core goals:
//   - Keep the request shape minimal: a prompt plus optional role-tagged history
//   - Keep calls blocking with plain text results, matching how the solve
//     engine treats model calls (synchronous, potentially high-latency)
//   - Facilitate lightweight mocking for tests (MockLM)
//
// Providers (e.g. OpenAI, Anthropic) implement the LM interface from this
// package so higher layers remain decoupled from vendor SDKs.
package lm
