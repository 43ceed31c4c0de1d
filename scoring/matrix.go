package scoring

import "fmt"

// pair is an ordered (subject symbol, query symbol) lookup key.
type pair struct {
	sub, qry byte
}

// Matrix is an immutable substitution matrix: an ordered pair of alphabet
// symbols mapped to an integer score. Construct via New, Identity, Load or
// LoadFile; there is no mutation API, so a Matrix is safe to share across
// goroutines.
type Matrix struct {
	alphabet []byte
	scores   map[pair]int
}

// New builds a Matrix from an explicit score grid. rows[r][c] scores the
// ordered pair (alphabet[r], alphabet[c]); callers holding symmetric data
// get both orderings for free since the full grid is populated.
//
// Returns ErrBadAlphabet when the alphabet is empty or contains duplicates,
// or when the grid is not len(alphabet) × len(alphabet).
func New(alphabet []byte, rows [][]int) (*Matrix, error) {
	n := len(alphabet)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrBadAlphabet)
	}
	seen := make(map[byte]bool, n)
	for _, s := range alphabet {
		if seen[s] {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrBadAlphabet, s)
		}
		seen[s] = true
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrBadAlphabet, len(rows), n)
	}

	m := &Matrix{
		alphabet: append([]byte(nil), alphabet...),
		scores:   make(map[pair]int, n*n),
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadAlphabet, r, len(row), n)
		}
		for c, v := range row {
			m.scores[pair{alphabet[r], alphabet[c]}] = v
		}
	}

	return m, nil
}

// Identity builds a match/mismatch matrix over alphabet: identical symbols
// score match, every other defined pair scores mismatch.
func Identity(alphabet []byte, match, mismatch int) *Matrix {
	m := &Matrix{
		alphabet: append([]byte(nil), alphabet...),
		scores:   make(map[pair]int, len(alphabet)*len(alphabet)),
	}
	for _, a := range alphabet {
		for _, b := range alphabet {
			if a == b {
				m.scores[pair{a, b}] = match
			} else {
				m.scores[pair{a, b}] = mismatch
			}
		}
	}

	return m
}

// Score returns the score for the ordered pair (subject, query).
// A pair outside the declared alphabet returns ErrUndefinedPair: the matrix
// and the sequences disagree about the alphabet, which no retry can fix.
func (m *Matrix) Score(subject, query byte) (int, error) {
	v, ok := m.scores[pair{subject, query}]
	if !ok {
		return 0, fmt.Errorf("%w: (%q, %q)", ErrUndefinedPair, subject, query)
	}

	return v, nil
}

// Alphabet returns a copy of the declared alphabet in matrix order.
func (m *Matrix) Alphabet() []byte {
	return append([]byte(nil), m.alphabet...)
}
