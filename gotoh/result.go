package gotoh

import (
	"strconv"
	"strings"
)

// String renders the alignment as a three-line block: query, a marker line
// with '|' under matching columns, and subject.
func (r *Result) String() string {
	var b strings.Builder
	b.Grow(3*len(r.QueryAligned) + 3)

	b.WriteString(r.QueryAligned)
	b.WriteByte('\n')
	for k := 0; k < len(r.QueryAligned); k++ {
		if r.QueryAligned[k] == r.SubjectAligned[k] && r.QueryAligned[k] != '-' {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	b.WriteString(r.SubjectAligned)

	return b.String()
}

// CIGAR summarizes the alignment as run-length operations: M for an aligned
// pair (match or mismatch), I for a gap in the query (subject symbol
// consumed), D for a gap in the subject (query symbol consumed).
func (r *Result) CIGAR() string {
	var b strings.Builder
	var (
		op  byte
		run int
	)
	for k := 0; k < len(r.QueryAligned); k++ {
		var cur byte
		switch {
		case r.QueryAligned[k] == '-':
			cur = 'I'
		case r.SubjectAligned[k] == '-':
			cur = 'D'
		default:
			cur = 'M'
		}
		if cur == op {
			run++

			continue
		}
		if run > 0 {
			b.WriteString(strconv.Itoa(run))
			b.WriteByte(op)
		}
		op, run = cur, 1
	}
	if run > 0 {
		b.WriteString(strconv.Itoa(run))
		b.WriteByte(op)
	}

	return b.String()
}
