package gotoh_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_ConcurrentCalls runs many alignments in parallel against a
// shared matrix and penalties. Every call owns its DP matrix, so all
// goroutines must reproduce the sequential result exactly.
func TestAlign_ConcurrentCalls(t *testing.T) {
	m, p := ntMatrix(), ntPenalties()
	want, err := gotoh.Align("ACGTACGTACGT", "ACGTTACGT", m, p)
	require.NoError(t, err)

	const goroutines = 16
	var wg sync.WaitGroup
	results := make([]*gotoh.Result, goroutines)
	errs := make([]error, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g], errs[g] = gotoh.Align("ACGTACGTACGT", "ACGTTACGT", m, p)
		}(g)
	}
	wg.Wait()

	for g := 0; g < goroutines; g++ {
		require.NoError(t, errs[g])
		assert.Equal(t, want, results[g])
	}
}
