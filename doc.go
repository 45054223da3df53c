// Package reffgrid estimates effective resistance between two buses of a
// power network without solving the full network.
//
// What is reffgrid?
//
//	The network is a bipartite graph: terminals (buses) on one side,
//	connectors (lines) on the other, each line signed +√g toward its first
//	bus and −√g toward its second. A two-terminal seed vector is pushed
//	through this signed operator with a Lanczos three-term recurrence that
//	only ever looks at the neighborhood of the last two supports. The
//	normalization scalars of that recurrence give a sequence of
//	coefficients whose cumulative squared sum converges to the estimate.
//
// Packages:
//
//	core/      immutable Topology snapshots, copy-on-write Editor, sentinel errors
//	builder/   Grid, Path and Spec (YAML/JSON) constructors
//	bfs/       hop distances and reachability
//	dijkstra/  least series-resistance path, an upper bound on the estimate
//	lanczos/   the signed three-term recurrence
//	spectral/  coefficients, cumulative approximation, per-order estimates
//	matrix/    dense incidence and operator views, numerical diagnostics
//	metrics/   Prometheus collectors
//	reff/      viper configuration and the Estimator pipeline
//
// Quick example:
//
//	N_0 ─L_0─ N_1 ─L_1─ N_2
//
//	A ±1 seed on N_0/N_2 gives Betas [√2, 1] and a single order whose
//	estimate is 1, twice the reciprocal of the 2 Ω series resistance.
//
// See examples/grid_effective_resistance for a runnable program.
package reffgrid
