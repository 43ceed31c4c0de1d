package gotoh_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResult_String renders the three-line block with '|' markers under
// matching pair columns only.
func TestResult_String(t *testing.T) {
	res, err := gotoh.Align("ACGTCAT", "ACGCAT", ntMatrix(), ntPenalties())
	require.NoError(t, err)

	assert.Equal(t, "ACGTCAT\n||| |||\nACG-CAT", res.String())
}

// TestResult_CIGAR covers pair, deletion and insertion runs.
func TestResult_CIGAR(t *testing.T) {
	res, err := gotoh.Align("ACGTCAT", "ACGCAT", ntMatrix(), ntPenalties())
	require.NoError(t, err)
	assert.Equal(t, "3M1D3M", res.CIGAR())

	res, err = gotoh.Align("ACGCAT", "ACGTCAT", ntMatrix(), ntPenalties())
	require.NoError(t, err)
	assert.Equal(t, "3M1I3M", res.CIGAR())

	res, err = gotoh.Align("", "", ntMatrix(), ntPenalties())
	require.NoError(t, err)
	assert.Empty(t, res.CIGAR())
}
