// SPDX-License-Identifier: MIT
// Package: reffgrid/dijkstra
//
// dijkstra.go: least series resistance between terminals.
//
// A hop from terminal u to terminal v through connector c costs 1/g(c); the
// incidence sign on (u, c) is ±√g, so 1/g = 1/sign². Residual connectors with a
// single remaining end lead nowhere and are skipped.
//
// Complexity:
//   - Time:  O((T + E) log T), T = terminals, E = incidences.
//   - Space: O(T + C) for the distance and predecessor maps.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reffgrid/core"
)

// Dijkstra computes the least series resistance from Options.Source to every
// terminal of t.
//
// Returns:
//   - dist: terminal ID → resistance (+Inf if unreachable or not settled).
//   - prev: when WithReturnPath is set, node ID → predecessor node. A terminal
//     points at the connector it was reached through and the connector points
//     at the terminal before it, so a path alternates between the two kinds.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. t must be non-nil (ErrNilTopology).
//  3. Source and Target, when set, must be terminals of t (core.ErrNotFound).
func Dijkstra(t *core.Topology, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if t == nil {
		return nil, nil, ErrNilTopology
	}
	for _, id := range []string{cfg.Source, cfg.Target} {
		if id != "" && !t.Has(core.KindTerminal, id) {
			return nil, nil, fmt.Errorf("dijkstra: terminal %q: %w", id, core.ErrNotFound)
		}
	}

	// 3) Initialize every terminal at +Inf and run.
	r := &runner{
		t:       t,
		options: cfg,
		dist:    make(map[string]float64, t.TerminalCount()),
		visited: make(map[string]bool, t.TerminalCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string)
	}
	for _, id := range t.Terminals() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// SeriesResistance returns the least series resistance between terminals a
// and b and the path that realizes it, from a to b. Unconnected terminals
// yield +Inf and a nil path.
//
// Every single path is an upper bound on the effective resistance between its
// ends: dropping all other lines can only raise it.
func SeriesResistance(t *core.Topology, a, b string) (float64, []string, error) {
	dist, prev, err := Dijkstra(t, Source(a), Target(b), WithReturnPath())
	if err != nil {
		return 0, nil, err
	}
	d := dist[b]
	if math.IsInf(d, 1) {
		return d, nil, nil
	}

	path := []string{b}
	for cur := b; cur != a; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	t       *core.Topology
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process settles terminals in order of increasing resistance until the
// heap drains, the cap is exceeded or the target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxResistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax walks terminal u → connector c → terminal v for every incidence of u.
func (r *runner) relax(u string) error {
	lines, err := r.t.Incidences(u)
	if err != nil {
		return fmt.Errorf("dijkstra: incidences of %q: %w", u, err)
	}
	for _, line := range lines {
		ends, err := r.t.Incidences(line.Neighbor)
		if err != nil {
			return fmt.Errorf("dijkstra: incidences of %q: %w", line.Neighbor, err)
		}
		w := 1 / (line.Sign * line.Sign)
		for _, end := range ends {
			v := end.Neighbor
			if v == u || r.visited[v] {
				continue
			}
			nd := r.dist[u] + w
			if nd > r.options.MaxResistance || nd >= r.dist[v] {
				continue
			}
			r.dist[v] = nd
			if r.prev != nil {
				r.prev[v] = line.Neighbor
				r.prev[line.Neighbor] = u
			}
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}

	return nil
}

// nodeItem is a terminal and its tentative resistance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem with lazy decrease-key. Ties break on
// ID so that equal-cost paths are chosen the same way every run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
