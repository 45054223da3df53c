// Package core_test verifies that published snapshots can be read from many
// goroutines while an Editor keeps producing new ones.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/reffgrid/core"
	"github.com/stretchr/testify/require"
)

func TestConcurrentReadersDuringEdits(t *testing.T) {
	base := triangle(t)
	const readers = 32

	var wg sync.WaitGroup
	errs := make(chan error, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, id := range base.Terminals() {
					inc, err := base.Incidences(id)
					if err != nil {
						errs <- err
						return
					}
					if len(inc) != 2 {
						errs <- fmt.Errorf("%s: degree %d", id, len(inc))
						return
					}
				}
			}
		}()
	}

	// Edit concurrently; base must never change.
	e := base.Edit()
	for _, id := range base.Connectors() {
		require.NoError(t, e.Remove(core.KindConnector, id))
		_ = e.Topology()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 6, base.EdgeCount())
	require.Zero(t, e.Topology().EdgeCount())
}
