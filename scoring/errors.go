package scoring

import "errors"

var (
	// ErrBadAlphabet indicates an empty alphabet, a duplicate symbol, or a
	// score grid whose shape does not match the alphabet.
	ErrBadAlphabet = errors.New("scoring: invalid alphabet or score grid shape")
	// ErrUndefinedPair indicates a lookup for a symbol pair the matrix does
	// not define; the matrix and the sequences use mismatched alphabets.
	ErrUndefinedPair = errors.New("scoring: undefined symbol pair")
	// ErrParse indicates a malformed matrix file; no partial matrix is returned.
	ErrParse = errors.New("scoring: malformed matrix file")
)
