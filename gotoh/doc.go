// Package gotoh computes optimal global pairwise alignments with affine
// gap penalties (Needleman–Wunsch–Gotoh).
//
// 🚀 What is Gotoh alignment?
//
//	Needleman–Wunsch aligns two sequences end-to-end; Gotoh's refinement
//	prices gaps realistically by charging a gap "open" cost once per run
//	and a cheaper "extend" cost per additional position. It's the workhorse
//	behind:
//	  • DNA / protein homology comparison
//	  • repeat-family consensus refinement
//	  • diff-like reconciliation of any symbol sequences
//
// ✨ Key features:
//   - three-state dynamic programming (substitution / insertion / deletion)
//   - exact, documented tie-break rules — output is bit-reproducible
//   - full traceback: aligned strings with '-' gaps, not just a score
//   - pluggable scoring via the scoring package
//
// ⚙️ Usage:
//
//	m := scoring.Identity([]byte("ACGT"), 10, -20)
//	p := &gotoh.Penalties{InsOpen: -12, InsExt: -2, DelOpen: -12, DelExt: -2}
//
//	res, err := gotoh.Align("ACGTCAT", "ACGCAT", m, p)
//	// res.Score, res.QueryAligned, res.SubjectAligned
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) — the full matrix is kept for traceback and released
//     when the call returns. No banding or linear-space variant.
//
// Each Align call owns its matrix; concurrent calls never share state.
package gotoh
