// Package scoring provides immutable substitution matrices for pairwise
// sequence alignment: an ordered (subject symbol, query symbol) pair is
// mapped to an integer score.
//
// 🚀 What is a scoring matrix?
//
//	Alignment algorithms decide between substitutions and gaps by comparing
//	scores. The matrix supplies the substitution half of that trade-off:
//	  • positive scores reward matches (or conservative substitutions)
//	  • negative scores penalize mismatches
//	Gap penalties live with the aligner, not here.
//
// ✨ Key features:
//   - Identity: quick match/mismatch matrices for any alphabet
//   - New: full per-pair control from an explicit score grid
//   - Load / LoadFile: RepeatMasker-style tabular matrix files
//   - total lookups — an undefined pair is a hard error, never a zero
//
// ⚙️ Usage:
//
//	m := scoring.Identity([]byte("ACGT"), 10, -20)
//	s, err := m.Score('A', 'C') // -20, nil
//
// Matrices are immutable after construction and safe for concurrent use.
//
// Lookups are case-sensitive: callers normalize sequences (the gotoh
// aligner uppercases its inputs before scoring).
package scoring
