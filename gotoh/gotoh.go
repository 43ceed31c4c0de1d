package gotoh

import (
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// Align — global Needleman–Wunsch–Gotoh alignment
//
// Description:
//
//	Aligns query against subject end-to-end under matrix m and affine gap
//	penalties p, returning the optimal score together with a concrete
//	alignment (two equal-length strings with '-' gaps).
//
// Algorithm Outline:
//  1. Uppercase both inputs; let n = len(subject), mLen = len(query).
//  2. Allocate an (n+1)×(mLen+1) matrix of three-state cells. Index i runs
//     over the subject, j over the query.
//  3. Initialize: cell (0,0) holds 0 in all three states. Row 0 holds
//     deletion runs (del = DelOpen + (j−1)·DelExt), column 0 insertion runs
//     (ins = InsOpen + (i−1)·InsExt); the other states on the borders are
//     poisoned so no path can enter through them.
//  4. Fill each interior cell from its three predecessors. Ties are broken
//     by fixed rules (see the recurrence comments) so the traceback — and
//     hence the returned alignment — is fully deterministic.
//  5. Pick the best terminal state at (n, mLen); its value is the score.
//  6. Walk the recorded predecessor tags back to a border, emitting aligned
//     symbols in reverse, pad any remaining prefix against gaps, reverse.
//
// Errors:
//   - ErrMissingParameter       — m or p is nil; checked before any work.
//   - scoring.ErrUndefinedPair  — the matrix lacks a pair the inputs use.
//
// Empty sequences are valid: an empty subject against a query of length L
// scores DelOpen + (L−1)·DelExt, and symmetrically for an empty query.
//
// Complexity:
//
//	Time   = O(n·mLen)
//	Memory = O(n·mLen), owned by this call and released on return
func Align(query, subject string, m *scoring.Matrix, p *Penalties) (*Result, error) {
	if m == nil || p == nil {
		return nil, ErrMissingParameter
	}

	q := strings.ToUpper(query)
	s := strings.ToUpper(subject)
	n, mLen := len(s), len(q)

	cells := make([][]cell, n+1)
	for i := range cells {
		cells[i] = make([]cell, mLen+1)
	}

	// Borders. Row 0 is one deletion run eating the query prefix, column 0
	// one insertion run eating the subject prefix; the unused states are
	// poisoned so the recurrence cannot route a path through them.
	for j := 1; j <= mLen; j++ {
		c := &cells[0][j]
		c.sub, c.ins = unreachable, unreachable
		c.del = p.DelOpen + (j-1)*p.DelExt
		c.delFrom = stateDel
		if j == 1 {
			c.delFrom = stateSub
		}
	}
	for i := 1; i <= n; i++ {
		c := &cells[i][0]
		c.sub, c.del = unreachable, unreachable
		c.ins = p.InsOpen + (i-1)*p.InsExt
		c.insFrom = stateIns
		if i == 1 {
			c.insFrom = stateSub
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= mLen; j++ {
			pairScore, err := m.Score(s[i-1], q[j-1])
			if err != nil {
				return nil, err
			}
			c := &cells[i][j]

			// Substitution state, fed from the diagonal. On ties the
			// insertion predecessor wins, then substitution, then deletion.
			diag := cells[i-1][j-1]
			switch {
			case diag.ins >= diag.sub && diag.ins >= diag.del:
				c.sub, c.subFrom = diag.ins+pairScore, stateIns
			case diag.sub > diag.del && diag.sub > diag.ins:
				c.sub, c.subFrom = diag.sub+pairScore, stateSub
			default:
				c.sub, c.subFrom = diag.del+pairScore, stateDel
			}

			// Insertion state, fed from above. Opening a fresh run from the
			// substitution state wins ties against extending.
			up := cells[i-1][j]
			if up.sub+p.InsOpen >= up.ins+p.InsExt {
				c.ins, c.insFrom = up.sub+p.InsOpen, stateSub
			} else {
				c.ins, c.insFrom = up.ins+p.InsExt, stateIns
			}

			// Deletion state, fed from the left; same open-beats-extend rule.
			left := cells[i][j-1]
			if left.sub+p.DelOpen >= left.del+p.DelExt {
				c.del, c.delFrom = left.sub+p.DelOpen, stateSub
			} else {
				c.del, c.delFrom = left.del+p.DelExt, stateDel
			}
		}
	}

	// Terminal state: substitution wins ties with both gap states;
	// insertion must beat both strictly; deletion takes the rest.
	fin := cells[n][mLen]
	var (
		st    state
		score int
	)
	switch {
	case fin.sub >= fin.del && fin.sub >= fin.ins:
		st, score = stateSub, fin.sub
	case fin.ins > fin.sub && fin.ins > fin.del:
		st, score = stateIns, fin.ins
	default:
		st, score = stateDel, fin.del
	}

	// Traceback, built back-to-front and reversed at the end.
	qa := make([]byte, 0, n+mLen)
	sa := make([]byte, 0, n+mLen)
	i, j := n, mLen
	for i > 0 && j > 0 {
		c := cells[i][j]
		switch st {
		case stateDel:
			qa = append(qa, q[j-1])
			sa = append(sa, '-')
			st = c.delFrom
			j--
		case stateSub:
			qa = append(qa, q[j-1])
			sa = append(sa, s[i-1])
			st = c.subFrom
			i--
			j--
		case stateIns:
			qa = append(qa, '-')
			sa = append(sa, s[i-1])
			st = c.insFrom
			i--
		}
	}
	for ; i > 0; i-- {
		qa = append(qa, '-')
		sa = append(sa, s[i-1])
	}
	for ; j > 0; j-- {
		qa = append(qa, q[j-1])
		sa = append(sa, '-')
	}
	reverse(qa)
	reverse(sa)

	return &Result{
		Score:          score,
		QueryAligned:   string(qa),
		SubjectAligned: string(sa),
		QueryStart:     1,
		QueryEnd:       mLen,
		SubjectStart:   1,
		SubjectEnd:     n,
	}, nil
}

// reverse flips b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
