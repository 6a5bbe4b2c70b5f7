// Package planner implements DeepSolve's automated hierarchical task
// planner. AutoPlanner asks a language model to decompose a problem into an
// ordered sequence of sub-questions, each bound to the informational
// resources judged relevant, and tracks the remaining recursion budget via
// its max depth.
//
// The planner always produces exactly one level of decomposition per Plan
// call; recursion into sub-problems is driven by the agent, which derives
// depth-adjusted planner copies through OneLevelDeep and OneFewerLevelDeep.
package planner
