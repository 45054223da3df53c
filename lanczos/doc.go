// Package lanczos runs the signed three-term recurrence that underlies the
// effective-resistance estimate.
//
// What
//
//   - Run(t, steps, seed, opts...) propagates a two-terminal seed vector through
//     the signed bipartite operator of a core.Topology and returns the sparse
//     Snapshots together with their normalization scalars Betas.
//   - Only the neighborhood of the two previous supports is examined at each
//     step; the full node set is never scanned.
//   - A direction that collapses to zero ends the run early with
//     Result.Truncated set. This is convergence, not failure.
//
// Determinism
//
//	Candidates are evaluated in sorted-ID order and each candidate sums over
//	its sorted incidences, so two runs on the same snapshot are bit-identical,
//	with or without WithWorkers.
//
// Concurrency
//
//	Steps depend on each other and are sequential. WithWorkers(n) fans one
//	step's candidate evaluation out over an errgroup once the candidate set
//	reaches WithParallelThreshold. The topology is an immutable snapshot, so
//	concurrent Runs on the same value are safe.
//
// Errors
//
//   - ErrNilTopology, ErrBadSteps
//   - ErrInvalidWeight, ErrCoincidentTerminals, ErrDegenerateSeed
//   - core.ErrNotFound for a seed that is not a terminal
package lanczos
