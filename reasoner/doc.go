// Package reasoner implements DeepSolve's direct-reasoning capability.
//
// OodaReasoner works through one task with an observe-orient-decide-act
// pass: it observes by querying the task's resources, orients by combining
// observations with accumulated knowledge, then asks the model to decide on
// an answer and judge its own confidence. A confident answer resolves the
// task; an unconfident one marks it as needing decomposition, leaving the
// partial answer available for later synthesis.
package reasoner
