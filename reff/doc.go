// Package reff wires the recurrence engine and the spectral aggregator into a
// single configurable estimation run.
//
// A Config holds the viper key tree (run.*, engine.*, diagnostics.*,
// logging.*); Settings is its validated form. An Estimator built from
// Settings runs lanczos.Run, spectral.Aggregate and a bfs reachability check
// and returns a Report that keeps every intermediate sequence.
//
//	cfg := reff.NewConfig()
//	_ = cfg.LoadConfigFile("reff.yaml")
//	est, err := reff.NewFromConfig(cfg, reff.WithMetrics(metrics.DefaultRegistry()))
//	rep, err := est.Estimate(ctx, topo)
//	fmt.Println(rep.Resistance())
//
// Resistance is +Inf when the two seed terminals are not connected.
package reff
