package scoring_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Asymmetric verifies that an explicit grid keeps lookup order:
// rows[r][c] scores (alphabet[r], alphabet[c]), not the reverse.
func TestNew_Asymmetric(t *testing.T) {
	m, err := scoring.New([]byte("AC"), [][]int{
		{5, -1},
		{-3, 7},
	})
	require.NoError(t, err)

	ac, err := m.Score('A', 'C')
	require.NoError(t, err)
	assert.Equal(t, -1, ac, "row A, column C")

	ca, err := m.Score('C', 'A')
	require.NoError(t, err)
	assert.Equal(t, -3, ca, "row C, column A")
}

// TestNew_BadShapes covers every ErrBadAlphabet constructor rejection.
func TestNew_BadShapes(t *testing.T) {
	_, err := scoring.New(nil, nil)
	assert.ErrorIs(t, err, scoring.ErrBadAlphabet, "empty alphabet must error")

	_, err = scoring.New([]byte("AA"), [][]int{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, scoring.ErrBadAlphabet, "duplicate symbol must error")

	_, err = scoring.New([]byte("AC"), [][]int{{1, 1}})
	assert.ErrorIs(t, err, scoring.ErrBadAlphabet, "missing row must error")

	_, err = scoring.New([]byte("AC"), [][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, scoring.ErrBadAlphabet, "short row must error")
}

// TestIdentity_Lookups verifies match/mismatch scores in both pair orders.
func TestIdentity_Lookups(t *testing.T) {
	m := scoring.Identity([]byte("ACGT"), 10, -20)

	for _, a := range []byte("ACGT") {
		for _, b := range []byte("ACGT") {
			v, err := m.Score(a, b)
			require.NoError(t, err)
			if a == b {
				assert.Equal(t, 10, v, "match %c/%c", a, b)
			} else {
				assert.Equal(t, -20, v, "mismatch %c/%c", a, b)
			}
		}
	}
}

// TestScore_UndefinedPair verifies that out-of-alphabet symbols surface
// ErrUndefinedPair instead of a silent zero.
func TestScore_UndefinedPair(t *testing.T) {
	m := scoring.Identity([]byte("ACGT"), 1, -1)

	_, err := m.Score('N', 'A')
	assert.ErrorIs(t, err, scoring.ErrUndefinedPair)

	_, err = m.Score('A', 'n')
	assert.ErrorIs(t, err, scoring.ErrUndefinedPair, "lookups are case-sensitive")
}

// TestAlphabet_Copy verifies the returned alphabet is detached from the matrix.
func TestAlphabet_Copy(t *testing.T) {
	m := scoring.Identity([]byte("ACGT"), 1, -1)

	a := m.Alphabet()
	require.Equal(t, []byte("ACGT"), a)
	a[0] = 'X'
	assert.Equal(t, []byte("ACGT"), m.Alphabet(), "mutating the copy must not touch the matrix")
}
