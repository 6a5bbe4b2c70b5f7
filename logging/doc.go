// Package logging provides a minimal logging interface and adapters for DeepSolve.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the agent and capabilities use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - SolveLogger with contextual helpers and domain specific logging for
//     model calls and decompositions
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	agent := deepsolve.New(reasoner, func(o *deepsolve.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
