// Package gotoh defines the aligner's parameter and result types.
package gotoh

import (
	"errors"
	"math"
)

// ErrMissingParameter indicates a nil scoring matrix or nil penalties;
// Align rejects the call before any computation.
var ErrMissingParameter = errors.New("gotoh: missing required parameter")

// Penalties holds the four affine gap parameters. "Open" is charged for the
// first position of a gap run, "extend" for each subsequent position in the
// same run. Insertions consume subject symbols (gap in the query);
// deletions consume query symbols (gap in the subject).
//
// Nothing forces these negative, but as penalties they are in practice:
// non-positive values are what make contiguous gaps beat substitutions.
type Penalties struct {
	InsOpen int
	InsExt  int
	DelOpen int
	DelExt  int
}

// Result is a completed global alignment.
//
// QueryAligned and SubjectAligned have equal length and use '-' as the gap
// symbol; stripping gaps from each reproduces the corresponding input
// (uppercased). Start/End coordinates are 1-based and, for a global
// alignment, always span the whole of each sequence.
//
// Orientation, PctIdentity, PctDivergence, QueryRemaining and
// SubjectRemaining are carried for record compatibility and left at their
// zero values: a caller that needs them fills them in as a post-pass.
type Result struct {
	Score          int
	QueryAligned   string
	SubjectAligned string

	QueryStart   int
	QueryEnd     int
	SubjectStart int
	SubjectEnd   int

	Orientation      string
	PctIdentity      float64
	PctDivergence    float64
	QueryRemaining   int
	SubjectRemaining int
}

// state tags which of the three DP states fed a cell's value.
type state uint8

const (
	stateSub state = iota // consumed one symbol from each sequence
	stateIns              // consumed a subject symbol only (gap in query)
	stateDel              // consumed a query symbol only (gap in subject)
)

// cell tracks the best score ending in each of the three states at one
// matrix position, plus the predecessor state behind each of the three.
type cell struct {
	sub, ins, del             int
	subFrom, insFrom, delFrom state
}

// unreachable poisons boundary states that no valid path can occupy. It is
// far enough below any real score that the recurrence never selects it,
// yet far enough above the int minimum that adding scores cannot wrap,
// even on 32-bit platforms.
const unreachable = math.MinInt32 / 2
