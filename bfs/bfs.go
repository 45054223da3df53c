// Package bfs provides breadth-first search over a core.Topology,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/reffgrid/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	topo  *core.Topology
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on t starting from startID.
// Returns ErrTopologyNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(t *core.Topology, startID string, opts ...Option) (*BFSResult, error) {
	return Multi(t, []string{startID}, opts...)
}

// Multi runs one breadth-first search seeded with every source at depth 0.
// Duplicate sources are visited once, in first-seen order.
func Multi(t *core.Topology, sources []string, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if _, ok := t.Kind(s); !ok {
			return nil, fmt.Errorf("%w: %q", ErrStartNotFound, s)
		}
	}

	n := t.TerminalCount() + t.ConnectorCount()
	w := &walker{
		topo:  t,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for _, s := range sources {
		if _, seen := w.res.Depth[s]; !seen {
			w.enqueue(s, 0, "")
		}
	}

	return w.res, w.loop()
}

// Distances returns the hop distance of every node reachable from any source.
func Distances(t *core.Topology, sources ...string) (map[string]int, error) {
	res, err := Multi(t, sources)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// Reachable reports whether b can be reached from a. The search stops as
// soon as b is visited.
func Reachable(t *core.Topology, a, b string) (bool, error) {
	if t == nil {
		return false, ErrTopologyNil
	}
	if _, ok := t.Kind(b); !ok {
		return false, fmt.Errorf("%w: %q", ErrStartNotFound, b)
	}
	found := errors.New("found")
	_, err := BFS(t, a, WithOnVisit(func(id string, _ int) error {
		if id == b {
			return found
		}
		return nil
	}))
	switch {
	case errors.Is(err, found):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// enqueue records id at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in sorted-ID order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.topo.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
