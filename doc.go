// Package seqalign is an in-memory toolkit for exact pairwise sequence
// alignment — substitution matrices plus a global affine-gap aligner.
//
// 🚀 What is seqalign?
//
//	A small, thread-safe, dependency-light library that brings together:
//		• Scoring matrices: build in code or load RepeatMasker-style files
//		• Global alignment: Needleman–Wunsch–Gotoh with affine gap penalties
//		• Full traceback: concrete aligned strings, not just a score
//
// ✨ Why choose seqalign?
//
//   - Deterministic – fixed tie-break rules, bit-identical output per input
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no external aligner processes
//   - Concurrency-friendly – every call owns its own DP matrix
//
// Under the hood, everything is organized under two subpackages:
//
//	scoring/ — immutable (symbol, symbol) → score lookups + file loading
//	gotoh/   — the dynamic-programming aligner and its result type
//
// Quick ASCII example:
//
//	ACGTCAT        query
//	||| |||
//	ACG-CAT        subject, one deleted symbol
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
