// Package plan provides the core study-plan engine for lectplan.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - types.go: DaySpan and StudyPlan, the partition output types
//   - solver.go: the cost table and the partition optimizer
//   - reader.go: the whitespace-token input format (count, complexities, day count)
//
// # Architecture
//
// The engine is a single-shot pipeline: an input source (token stream or course
// YAML) produces an ordered complexity sequence, the solver partitions it into
// exactly the requested number of contiguous study days, and the result is
// either the bare complexity level or a reconstructed per-day breakdown.
//
//   - course.go: strict YAML course specifications with field validation
//   - summary.go: aggregate statistics over a computed plan
//   - sweep.go: costs across every feasible day count
//   - synth.go: deterministic synthetic complexity sequences for testing
//
// A day's cost is the maximum complexity among its lectures; the plan's total
// is the sum of day costs. The solver minimizes that total. All computation is
// synchronous and deterministic: no goroutines, no shared state, and identical
// inputs always produce identical plans.
package plan
