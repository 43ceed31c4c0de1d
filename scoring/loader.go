package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load parses a RepeatMasker-style substitution matrix from r.
//
// File grammar, line by line:
//   - lines starting with '#' are comments, blank lines are skipped
//   - a FREQS line (background frequencies) is skipped
//   - the first line of 4+ whitespace-separated single uppercase letters is
//     the alphabet header
//   - each following row holds one integer per alphabet column; rows map to
//     alphabet symbols positionally, in file order. A leading row label (the
//     symbol itself, or a punctuation token) is discarded.
//
// Any row whose scores do not parse as integers aborts the load with
// ErrParse; Load never returns a partially filled Matrix.
func Load(r io.Reader) (*Matrix, error) {
	var (
		alphabet []byte
		rows     [][]int
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "FREQS") {
			continue
		}
		fields := strings.Fields(line)

		if alphabet == nil {
			if !isAlphabetHeader(fields) {
				continue // preamble noise before the header
			}
			alphabet = make([]byte, len(fields))
			for i, f := range fields {
				alphabet[i] = f[0]
			}

			continue
		}
		if len(rows) == len(alphabet) {
			continue // trailing material after the score block
		}

		// Row labels are decorative; rows bind to the alphabet by position.
		if _, err := strconv.Atoi(fields[0]); err != nil {
			fields = fields[1:]
		}
		if len(fields) != len(alphabet) {
			return nil, fmt.Errorf("%w: line %d has %d scores, want %d", ErrParse, lineNo, len(fields), len(alphabet))
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer score", ErrParse, lineNo, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scoring: read matrix: %w", err)
	}
	if alphabet == nil {
		return nil, fmt.Errorf("%w: no alphabet header found", ErrParse)
	}
	if len(rows) != len(alphabet) {
		return nil, fmt.Errorf("%w: %d score rows for %d alphabet symbols", ErrParse, len(rows), len(alphabet))
	}

	return New(alphabet, rows)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: open matrix: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// isAlphabetHeader reports whether fields form the alphabet line:
// 4 or more tokens, each a single uppercase letter.
func isAlphabetHeader(fields []string) bool {
	if len(fields) < 4 {
		return false
	}
	for _, f := range fields {
		if len(f) != 1 || f[0] < 'A' || f[0] > 'Z' {
			return false
		}
	}

	return true
}
