package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/reffgrid/bfs"
	"github.com/katalvlaran/reffgrid/builder"
	"github.com/katalvlaran/reffgrid/core"
)

func grid(t testing.TB, rows, cols int) *core.Topology {
	t.Helper()
	topo, err := builder.BuildTopology(nil, builder.Grid(rows, cols))
	if err != nil {
		t.Fatalf("Grid(%d,%d): %v", rows, cols, err)
	}
	return topo
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrTopologyNil) {
		t.Errorf("nil topology: want ErrTopologyNil, got %v", err)
	}
	topo := grid(t, 2, 2)
	if _, err := bfs.BFS(topo, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	if _, err := bfs.Multi(topo, nil); !errors.Is(err, bfs.ErrNoSources) {
		t.Errorf("no sources: want ErrNoSources, got %v", err)
	}
	if _, err := bfs.BFS(topo, "N_0_0", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Reachable(topo, "N_0_0", "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing target: want ErrStartNotFound, got %v", err)
	}
}

// TestBFS_GridOrder checks the deterministic bipartite layering of a 2×2 grid.
func TestBFS_GridOrder(t *testing.T) {
	res, err := bfs.BFS(grid(t, 2, 2), "N_0_0")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"N_0_0", "L_h_0_0", "L_v_0_0", "N_0_1", "N_1_0", "L_v_0_1", "L_h_1_0", "N_1_1"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["N_1_1"]; d != 4 {
		t.Errorf("Depth[N_1_1] = %d; want 4", d)
	}
	path, err := res.PathTo("N_1_1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"N_0_0", "L_h_0_0", "N_0_1", "L_v_0_1", "N_1_1"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if _, err := res.PathTo("nowhere"); err == nil {
		t.Error("PathTo(nowhere): want error")
	}
}

// TestBFS_MaxDepth limits exploration to two hops (one terminal ring).
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(grid(t, 3, 3), "N_1_1", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	// Center, four connectors, four neighbouring terminals.
	if got := len(res.Order); got != 9 {
		t.Errorf("visited %d nodes; want 9 (%v)", got, res.Order)
	}
	for id, d := range res.Depth {
		if d > 2 {
			t.Errorf("%s at depth %d beyond limit", id, d)
		}
	}
}

// TestDistances_MultiSource takes the minimum over sources.
func TestDistances_MultiSource(t *testing.T) {
	topo, err := builder.BuildTopology(nil, builder.Path(5))
	if err != nil {
		t.Fatal(err)
	}
	dist, err := bfs.Distances(topo, "N_0", "N_4", "N_0")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"N_0": 0, "L_0": 1, "N_1": 2, "L_1": 3, "N_2": 4,
		"N_4": 0, "L_3": 1, "N_3": 2, "L_2": 3,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
}

// TestReachable covers connected, split and isolated terminals.
func TestReachable(t *testing.T) {
	topo := grid(t, 2, 3)
	if ok, err := bfs.Reachable(topo, "N_0_0", "N_1_2"); err != nil || !ok {
		t.Errorf("grid corners: ok=%v err=%v; want reachable", ok, err)
	}

	// Cutting the middle column splits the grid into two halves.
	e := topo.Edit()
	if err := e.Apply(
		core.Removal{Kind: core.KindConnector, ID: "L_h_0_0"},
		core.Removal{Kind: core.KindConnector, ID: "L_h_1_0"},
	); err != nil {
		t.Fatal(err)
	}
	split := e.Topology()
	if ok, err := bfs.Reachable(split, "N_0_0", "N_1_2"); err != nil || ok {
		t.Errorf("split grid: ok=%v err=%v; want unreachable", ok, err)
	}
	if ok, _ := bfs.Reachable(split, "N_0_0", "N_1_0"); !ok {
		t.Error("same half: want reachable")
	}
	if ok, _ := bfs.Reachable(split, "N_0_0", "N_0_0"); !ok {
		t.Error("self: want reachable")
	}
}

// TestBFS_FilterAndHook exercises neighbor filtering and hook errors.
func TestBFS_FilterAndHook(t *testing.T) {
	topo := grid(t, 1, 3)
	res, err := bfs.BFS(topo, "N_0_0", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "L_h_0_1"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth["N_0_2"]; ok {
		t.Error("filtered connector must block N_0_2")
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(topo, "N_0_0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "N_0_1" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestBFS_Cancellation checks that a cancelled context aborts the search.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(grid(t, 3, 3), "N_0_0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
