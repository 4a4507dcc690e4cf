package cp6

import "errors"

var (
	// ErrInvalidPoint indicates a point is not on its curve.
	ErrInvalidPoint = errors.New("cp6: point not on curve")

	// ErrInvalidEncoding indicates invalid byte serialization.
	ErrInvalidEncoding = errors.New("cp6: invalid encoding")

	// ErrDegenerateLine indicates a Miller-loop line evaluation hit a zero
	// denominator (coincident points that should not occur for inputs of
	// the curve's prime order). This is a programmer error per spec §7:
	// it signals malformed or non-normalized inputs, not a recoverable
	// domain condition.
	ErrDegenerateLine = errors.New("cp6: degenerate line slope in Miller loop")
)
